package pile

import "pile-lite/card"

type Snapshot struct {
	Cards   []card.Card
	High    card.Card
	HasHigh bool
	Mode    ShuffleMode
}

func (p *Pile) Snapshot() Snapshot {
	s := Snapshot{
		Cards: p.cards.Clone(),
		Mode:  p.mode,
	}
	s.High, s.HasHigh = p.High()
	return s
}

// FromSnapshot rebuilds a pile from s. cfg supplies the random source; its
// Shuffle field is overridden by s.Mode. The recorded high card is kept even
// when it ties with an earlier card; a high card that is missing or
// outranked is rejected with ErrHighMismatch.
func FromSnapshot(s Snapshot, cfg Config) (*Pile, error) {
	cfg.Shuffle = s.Mode
	p, err := NewWithConfig(cfg, s.Cards...)
	if err != nil {
		return nil, err
	}
	high, ok := p.High()
	if ok != s.HasHigh {
		return nil, ErrHighMismatch
	}
	if !ok {
		return p, nil
	}
	if high.Compare(s.High) != 0 {
		return nil, ErrHighMismatch
	}
	// a shuffled pile may hold its high card behind a tied one
	for i, c := range p.cards {
		if c == s.High {
			p.high = i
			return p, nil
		}
	}
	return nil, ErrHighMismatch
}
