package card

// CardList is a tail-only card sequence: Add pushes, PopCard pops.
type CardList []Card

// Count 获取总牌数
func (ds CardList) Count() int {
	return len(ds)
}

// Clone returns a copy that shares no backing array with ds.
func (ds CardList) Clone() []Card {
	out := make([]Card, len(ds))
	copy(out, ds)
	return out
}

func (ds *CardList) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

// Peek returns the tail card without removing it.
func (ds CardList) Peek() (Card, bool) {
	if len(ds) == 0 {
		return CardInvalid, false
	}
	return ds[len(ds)-1], true
}

func (ds *CardList) PopCard() (Card, bool) {
	totalCount := ds.Count()
	if totalCount == 0 {
		return CardInvalid, false
	}
	card := (*ds)[totalCount-1]
	*ds = (*ds)[:totalCount-1]
	return card, true
}
