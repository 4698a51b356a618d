package pile

import (
	"fmt"

	"pile-lite/card"
)

type ShuffleMode byte

const (
	// FisherYates draws each swap partner from the not-yet-shuffled prefix,
	// giving every permutation equal probability.
	FisherYates ShuffleMode = iota
	// FullRangeSwap swaps every position with a partner drawn from the whole
	// pile, as the legacy deck code did. Its permutations are not uniformly
	// distributed.
	FullRangeSwap
)

var ShuffleModeDictionary = map[ShuffleMode]string{
	FisherYates:   "fisher-yates",
	FullRangeSwap: "full-range-swap",
}

func (m ShuffleMode) valid() bool {
	_, ok := ShuffleModeDictionary[m]
	return ok
}

func (m ShuffleMode) String() string {
	if name, ok := ShuffleModeDictionary[m]; ok {
		return name
	}
	return fmt.Sprintf("ShuffleMode(%d)", byte(m))
}

func ParseShuffleMode(raw string) (ShuffleMode, error) {
	for m, name := range ShuffleModeDictionary {
		if name == raw {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unsupported shuffle mode %q", raw)
}

// Shuffle permutes the pile in place. The suit index is re-derived from the
// new order, since Pop relies on each suit's newest card sitting at the tail
// of its list. The high card stays the same card, at its new position.
func (p *Pile) Shuffle() {
	n := len(p.cards)
	if n < 2 {
		return
	}
	permute(n, p.mode, p.src, func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
		switch p.high {
		case i:
			p.high = j
		case j:
			p.high = i
		}
	})
	p.rebuildSuits()
}

// ShuffleCards shuffles a plain card slice with the given algorithm.
func ShuffleCards(cards []card.Card, mode ShuffleMode, src Source) {
	permute(len(cards), mode, src, func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func permute(n int, mode ShuffleMode, src Source, swap func(i, j int)) {
	if n < 2 {
		return
	}
	switch mode {
	case FullRangeSwap:
		for i := 0; i < n; i++ {
			swap(i, src.Intn(n))
		}
	default:
		for i := n - 1; i > 0; i-- {
			swap(i, src.Intn(i+1))
		}
	}
}
