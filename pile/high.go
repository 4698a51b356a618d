package pile

import "pile-lite/card"

// High returns the highest-ranked card. Among cards sharing the top rank the
// one that was added first is reported, and a shuffle does not change which.
// After the high card is popped, the rescan picks the tied card nearest the
// bottom.
func (p *Pile) High() (card.Card, bool) {
	if p.high < 0 {
		return card.CardInvalid, false
	}
	return p.cards[p.high], true
}

// observe folds the card at index i into the cache. Only a strictly higher
// rank replaces the current high, so ties keep the earlier card.
func (p *Pile) observe(i int) {
	if p.high < 0 || p.cards[i].Compare(p.cards[p.high]) > 0 {
		p.high = i
	}
}

// rescan recomputes the cache from scratch after the high card was popped.
func (p *Pile) rescan() {
	p.high = -1
	for i := range p.cards {
		p.observe(i)
	}
}
