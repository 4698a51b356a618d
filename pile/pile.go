// Package pile implements the card container behind decks, hands and
// discard stacks: a tail-only card stack with a per-suit index and a cached
// highest card.
package pile

import (
	"fmt"
	"strings"

	"pile-lite/card"
)

// Pile is a stack of cards. The suit index and high-card cache are updated
// together with the stack on every mutation.
//
// A Pile is not safe for concurrent use; callers sharing one across
// goroutines must serialise access themselves.
type Pile struct {
	cards card.CardList
	suits map[card.Suit]card.CardList

	// index into cards of the highest card, -1 when empty
	high int

	mode ShuffleMode
	src  Source
}

// New returns an empty pile with the default config.
func New() *Pile {
	return newPile(Config{})
}

// NewFrom builds a pile holding cards, in order. The cards go through
// AddAll, so the suit index and high card are populated as if each card
// had been added by hand.
func NewFrom(cards []card.Card) (*Pile, error) {
	return NewWithConfig(Config{}, cards...)
}

func NewWithConfig(cfg Config, cards ...card.Card) (*Pile, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	p := newPile(cfg)
	if err := p.AddAll(cards...); err != nil {
		return nil, err
	}
	return p, nil
}

// NewDeck returns a pile holding the 52 cards of card.Deck, unshuffled.
func NewDeck(cfg Config) (*Pile, error) {
	return NewWithConfig(cfg, card.Deck()...)
}

func newPile(cfg Config) *Pile {
	p := &Pile{
		suits: make(map[card.Suit]card.CardList, len(card.Suits)),
		high:  -1,
		mode:  cfg.Shuffle,
		src:   cfg.source(),
	}
	for _, s := range card.Suits {
		p.suits[s] = nil
	}
	return p
}

func (p *Pile) check(c card.Card) error {
	if _, ok := p.suits[c.Suit()]; !ok {
		return &LookupError{Kind: "suit", Value: byte(c.Suit())}
	}
	if !c.Rank().Valid() {
		return &LookupError{Kind: "rank", Value: byte(c.Rank())}
	}
	return nil
}

// Add pushes c onto the pile. A card whose suit or rank is unknown is
// rejected with a *LookupError and the pile is left as it was.
func (p *Pile) Add(c card.Card) error {
	if err := p.check(c); err != nil {
		return err
	}
	p.push(c)
	return nil
}

// AddAll adds cards in order. Every card is checked first, so either all
// of them are added or none are.
func (p *Pile) AddAll(cards ...card.Card) error {
	for i, c := range cards {
		if err := p.check(c); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	for _, c := range cards {
		p.push(c)
	}
	return nil
}

func (p *Pile) push(c card.Card) {
	s := c.Suit()
	list := p.suits[s]
	list.Add(c)
	p.suits[s] = list
	p.cards.Add(c)
	p.observe(len(p.cards) - 1)
}

// Pop removes and returns the top card. On an empty pile it returns
// ErrEmptyPile and changes nothing.
func (p *Pile) Pop() (card.Card, error) {
	c, ok := p.cards.PopCard()
	if !ok {
		return card.CardInvalid, ErrEmptyPile
	}

	// the newest card of a suit is the tail of both sequences
	s := c.Suit()
	list := p.suits[s]
	list.PopCard()
	p.suits[s] = list

	if p.high == len(p.cards) {
		p.rescan()
	}
	return c, nil
}

// PopN pops n cards and returns them in pop order (top card first).
func (p *Pile) PopN(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid pop count %d", n)
	}
	if n > len(p.cards) {
		return nil, fmt.Errorf("pop %d of %d cards: %w", n, len(p.cards), ErrEmptyPile)
	}
	out := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := p.Pop()
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Peek returns the top card without removing it.
func (p *Pile) Peek() (card.Card, error) {
	c, ok := p.cards.Peek()
	if !ok {
		return card.CardInvalid, ErrEmptyPile
	}
	return c, nil
}

func (p *Pile) Len() int {
	return p.cards.Count()
}

func (p *Pile) IsEmpty() bool {
	return p.cards.Count() == 0
}

// Cards returns a copy of the pile, bottom card first.
func (p *Pile) Cards() []card.Card {
	return p.cards.Clone()
}

// SuitCards returns a copy of the cards of suit s, in pile order.
func (p *Pile) SuitCards(s card.Suit) ([]card.Card, error) {
	list, ok := p.suits[s]
	if !ok {
		return nil, &LookupError{Kind: "suit", Value: byte(s)}
	}
	return list.Clone(), nil
}

// SuitCount is the number of cards of suit s; 0 for unknown suits.
func (p *Pile) SuitCount(s card.Suit) int {
	return p.suits[s].Count()
}

// Mode reports the shuffle algorithm the pile was configured with.
func (p *Pile) Mode() ShuffleMode {
	return p.mode
}

// Reset empties the pile, keeping its config and random source.
func (p *Pile) Reset() {
	p.cards = p.cards[:0]
	for s, list := range p.suits {
		p.suits[s] = list[:0]
	}
	p.high = -1
}

func (p *Pile) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p.cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// rebuildSuits re-derives the suit index from the stack order.
func (p *Pile) rebuildSuits() {
	for s, list := range p.suits {
		p.suits[s] = list[:0]
	}
	for _, c := range p.cards {
		s := c.Suit()
		p.suits[s] = append(p.suits[s], c)
	}
}

// Verify checks that the suit index mirrors the stack and that the cached
// high card is present and unbeaten.
func (p *Pile) Verify() error {
	if len(p.suits) != len(card.Suits) {
		return InvariantError(fmt.Sprintf("suit index has %d keys", len(p.suits)))
	}
	for _, s := range card.Suits {
		list, ok := p.suits[s]
		if !ok {
			return InvariantError("missing suit " + s.Name())
		}
		j := 0
		for _, c := range p.cards {
			if c.Suit() != s {
				continue
			}
			if j >= len(list) || list[j] != c {
				return InvariantError(fmt.Sprintf("suit %s diverges from pile at position %d", s.Name(), j))
			}
			j++
		}
		if j != len(list) {
			return InvariantError(fmt.Sprintf("suit %s holds %d cards, pile has %d", s.Name(), len(list), j))
		}
	}

	if len(p.cards) == 0 {
		if p.high != -1 {
			return InvariantError("high card set on empty pile")
		}
		return nil
	}
	if p.high < 0 || p.high >= len(p.cards) {
		return InvariantError(fmt.Sprintf("high index %d out of range", p.high))
	}
	h := p.cards[p.high]
	for _, c := range p.cards {
		if c.Compare(h) > 0 {
			return InvariantError(fmt.Sprintf("%s outranks cached high %s", c, h))
		}
	}
	return nil
}
