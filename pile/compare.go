package pile

import (
	"sort"

	"pile-lite/card"
)

// Compare orders two cards by rank value alone: 1 when a outranks b, -1 when
// it is outranked, 0 on equal rank. Usable as a sort comparator.
func Compare(a, b card.Card) int {
	return a.Compare(b)
}

// Sort orders cards by ascending rank. Equal ranks keep their relative order.
func Sort(cards []card.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return Compare(cards[i], cards[j]) < 0
	})
}

// Sorted returns the pile's cards ordered by ascending rank, leaving the
// pile itself untouched.
func (p *Pile) Sorted() []card.Card {
	out := p.cards.Clone()
	Sort(out)
	return out
}
