package pile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"pile-lite/card"
	"pile-lite/rng"
)

func mustAdd(t *testing.T, p *Pile, cards ...card.Card) {
	t.Helper()
	for _, c := range cards {
		if err := p.Add(c); err != nil {
			t.Fatalf("Add(%s) err: %v", c, err)
		}
		if err := p.Verify(); err != nil {
			t.Fatalf("after Add(%s): %v", c, err)
		}
	}
}

func mustPop(t *testing.T, p *Pile) card.Card {
	t.Helper()
	c, err := p.Pop()
	if err != nil {
		t.Fatalf("Pop err: %v", err)
	}
	if err := p.Verify(); err != nil {
		t.Fatalf("after Pop -> %s: %v", c, err)
	}
	return c
}

func assertHigh(t *testing.T, p *Pile, want card.Card) {
	t.Helper()
	got, ok := p.High()
	if !ok {
		t.Fatalf("expected high %s, pile has none", want)
	}
	if got != want {
		t.Fatalf("high = %s, want %s", got, want)
	}
}

func TestPile_HighTracksAddAndPop(t *testing.T) {
	p := New()
	mustAdd(t, p, card.CardClub5, card.CardSpadeK, card.CardDiamond2)
	assertHigh(t, p, card.CardSpadeK)

	if c := mustPop(t, p); c != card.CardDiamond2 {
		t.Fatalf("first pop = %s, want 2♦", c)
	}
	assertHigh(t, p, card.CardSpadeK)

	if c := mustPop(t, p); c != card.CardSpadeK {
		t.Fatalf("second pop = %s, want K♠", c)
	}
	assertHigh(t, p, card.CardClub5)

	mustPop(t, p)
	if _, ok := p.High(); ok {
		t.Fatalf("expected no high card on empty pile")
	}
}

func TestPop_EmptyPile(t *testing.T) {
	p := New()
	c, err := p.Pop()
	if !errors.Is(err, ErrEmptyPile) {
		t.Fatalf("expected ErrEmptyPile, got %v", err)
	}
	if c != card.CardInvalid {
		t.Fatalf("expected CardInvalid, got %s", c)
	}
	if p.Len() != 0 || !p.IsEmpty() {
		t.Fatalf("empty pop must leave the pile empty, len=%d", p.Len())
	}
	if err := p.Verify(); err != nil {
		t.Fatalf("Verify after empty pop: %v", err)
	}
	if _, err := p.Peek(); !errors.Is(err, ErrEmptyPile) {
		t.Fatalf("expected Peek on empty pile to fail, got %v", err)
	}
}

func TestAdd_RejectsUnknownSuitAndRank(t *testing.T) {
	tests := []struct {
		name string
		c    card.Card
		kind string
	}{
		{name: "suit nibble 4", c: card.Card(0x45), kind: "suit"},
		{name: "suit nibble 15", c: card.Card(0xFA), kind: "suit"},
		{name: "rank 1", c: card.New(card.Hearts, 1), kind: "rank"},
		{name: "invalid card", c: card.CardInvalid, kind: "rank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			mustAdd(t, p, card.CardHeart9)
			before := p.Snapshot()

			err := p.Add(tt.c)
			var lookupErr *LookupError
			if !errors.As(err, &lookupErr) {
				t.Fatalf("expected *LookupError, got %T (%v)", err, err)
			}
			if lookupErr.Kind != tt.kind {
				t.Fatalf("lookup kind = %q, want %q", lookupErr.Kind, tt.kind)
			}
			if diff := cmp.Diff(before, p.Snapshot()); diff != "" {
				t.Fatalf("rejected Add mutated the pile (-before +after):\n%s", diff)
			}
		})
	}
}

func TestHigh_TieKeepsFirstAdded(t *testing.T) {
	for run := 0; run < 5; run++ {
		p := New()
		mustAdd(t, p, card.CardHeartA, card.CardSpadeA)
		assertHigh(t, p, card.CardHeartA)
	}

	// popping the second ace must not disturb the first
	p := New()
	mustAdd(t, p, card.CardHeartA, card.CardSpadeA)
	mustPop(t, p)
	assertHigh(t, p, card.CardHeartA)
}

func TestHigh_RescanPicksFirstOfTiedCards(t *testing.T) {
	p := New()
	mustAdd(t, p, card.CardHeart7, card.CardClubQ, card.CardDiamondQ, card.CardSpadeA)
	assertHigh(t, p, card.CardSpadeA)

	mustPop(t, p)
	assertHigh(t, p, card.CardClubQ)
}

func TestHigh_RescanUsesStrictComparison(t *testing.T) {
	// 9 beats 8 by exactly one rank step; the rescan must still pick it up.
	p := New()
	mustAdd(t, p, card.CardHeart8, card.CardClub9, card.CardSpadeK)
	mustPop(t, p)
	assertHigh(t, p, card.CardClub9)
}

func TestAddPop_RoundTrip(t *testing.T) {
	r := rng.New(11)
	deck := card.Deck()
	p := New()
	for i := 0; i < 30; i++ {
		mustAdd(t, p, deck[r.Intn(len(deck))])
	}

	for _, c := range []card.Card{card.CardSpadeA, card.CardHeart2, card.CardDiamondT} {
		before := p.Snapshot()
		mustAdd(t, p, c)
		if got := mustPop(t, p); got != c {
			t.Fatalf("Pop = %s, want %s", got, c)
		}
		if diff := cmp.Diff(before, p.Snapshot()); diff != "" {
			t.Fatalf("add+pop of %s changed the pile (-before +after):\n%s", c, diff)
		}
	}
}

func TestInvariants_RandomOperations(t *testing.T) {
	r := rng.New(2024)
	deck := card.Deck()
	p := New()
	var shadow []card.Card

	for step := 0; step < 3000; step++ {
		if len(shadow) > 0 && r.Intn(3) == 0 {
			got, err := p.Pop()
			if err != nil {
				t.Fatalf("step %d: Pop err: %v", step, err)
			}
			want := shadow[len(shadow)-1]
			shadow = shadow[:len(shadow)-1]
			if got != want {
				t.Fatalf("step %d: Pop = %s, want %s", step, got, want)
			}
		} else {
			c := deck[r.Intn(len(deck))]
			if err := p.Add(c); err != nil {
				t.Fatalf("step %d: Add err: %v", step, err)
			}
			shadow = append(shadow, c)
		}

		if err := p.Verify(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		if diff := cmp.Diff(shadow, p.Cards(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: contents diverged (-want +got):\n%s", step, diff)
		}

		high, ok := p.High()
		if ok != (len(shadow) > 0) {
			t.Fatalf("step %d: High ok=%v with %d cards", step, ok, len(shadow))
		}
		if ok {
			best := 0
			for _, c := range shadow {
				best = max(best, c.Value())
			}
			if high.Value() != best {
				t.Fatalf("step %d: high %s value %d, max value %d", step, high, high.Value(), best)
			}
		}
	}
}

func TestNewFrom_PopulatesIndexAndHigh(t *testing.T) {
	cards := []card.Card{card.CardHeart4, card.CardSpadeJ, card.CardHeartK, card.CardClub3}
	p, err := NewFrom(cards)
	if err != nil {
		t.Fatalf("NewFrom err: %v", err)
	}
	if err := p.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	assertHigh(t, p, card.CardHeartK)

	hearts, err := p.SuitCards(card.Hearts)
	if err != nil {
		t.Fatalf("SuitCards err: %v", err)
	}
	if diff := cmp.Diff([]card.Card{card.CardHeart4, card.CardHeartK}, hearts); diff != "" {
		t.Fatalf("hearts mismatch (-want +got):\n%s", diff)
	}

	// the pile must not alias the caller's slice
	cards[0] = card.CardDiamondA
	if p.Cards()[0] != card.CardHeart4 {
		t.Fatalf("NewFrom kept a reference to the input slice")
	}

	if _, err := NewFrom([]card.Card{card.CardHeart4, card.Card(0x52)}); err == nil {
		t.Fatalf("expected NewFrom to reject an unknown suit")
	}
}

func TestAddAll_IsAllOrNothing(t *testing.T) {
	p := New()
	mustAdd(t, p, card.CardClub8)

	err := p.AddAll(card.CardHeartQ, card.CardSpade3, card.Card(0x73))
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected wrapped *LookupError, got %v", err)
	}
	if p.Len() != 1 || p.SuitCount(card.Hearts) != 0 {
		t.Fatalf("failed AddAll must not add anything, len=%d", p.Len())
	}

	if err := p.AddAll(card.CardHeartQ, card.CardSpade3); err != nil {
		t.Fatalf("AddAll err: %v", err)
	}
	if err := p.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	assertHigh(t, p, card.CardHeartQ)
}

func TestPopN(t *testing.T) {
	p, err := NewFrom([]card.Card{card.CardHeart2, card.CardHeart3, card.CardHeart4})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.PopN(4); !errors.Is(err, ErrEmptyPile) {
		t.Fatalf("expected ErrEmptyPile, got %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("failed PopN must not mutate, len=%d", p.Len())
	}
	if _, err := p.PopN(-1); err == nil {
		t.Fatalf("expected error for negative count")
	}

	got, err := p.PopN(2)
	if err != nil {
		t.Fatalf("PopN err: %v", err)
	}
	if diff := cmp.Diff([]card.Card{card.CardHeart4, card.CardHeart3}, got); diff != "" {
		t.Fatalf("PopN order (-want +got):\n%s", diff)
	}
	assertHigh(t, p, card.CardHeart2)
	if err := p.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSuitQueries(t *testing.T) {
	p := New()
	mustAdd(t, p, card.CardSpade2, card.CardDiamond9, card.CardSpadeQ, card.CardClubA)

	if n := p.SuitCount(card.Spades); n != 2 {
		t.Fatalf("SuitCount(Spades) = %d, want 2", n)
	}
	if n := p.SuitCount(card.Hearts); n != 0 {
		t.Fatalf("SuitCount(Hearts) = %d, want 0", n)
	}
	if n := p.SuitCount(card.Suit(9)); n != 0 {
		t.Fatalf("SuitCount(unknown) = %d, want 0", n)
	}

	spades, _ := p.SuitCards(card.Spades)
	spades[0] = card.CardHeartA
	again, _ := p.SuitCards(card.Spades)
	if again[0] != card.CardSpade2 {
		t.Fatalf("SuitCards must return a copy")
	}

	_, err := p.SuitCards(card.Suit(6))
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Kind != "suit" {
		t.Fatalf("expected suit LookupError, got %v", err)
	}

	if top, err := p.Peek(); err != nil || top != card.CardClubA {
		t.Fatalf("Peek = %s, %v", top, err)
	}
	if s := p.String(); s != "[2♠ 9♦ Q♠ A♣]" {
		t.Fatalf("String = %q", s)
	}
}

func TestReset(t *testing.T) {
	p := New()
	mustAdd(t, p, card.CardHeart5, card.CardClubK)
	p.Reset()
	if !p.IsEmpty() {
		t.Fatalf("expected empty pile after Reset")
	}
	if err := p.Verify(); err != nil {
		t.Fatalf("Verify after Reset: %v", err)
	}
	mustAdd(t, p, card.CardDiamond3)
	assertHigh(t, p, card.CardDiamond3)
}

func TestNewWithConfig_RejectsUnknownShuffleMode(t *testing.T) {
	if _, err := NewWithConfig(Config{Shuffle: ShuffleMode(9)}); err == nil {
		t.Fatalf("expected invalid shuffle mode to be rejected")
	}
}

func TestNewDeck(t *testing.T) {
	p, err := NewDeck(Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewDeck err: %v", err)
	}
	if p.Len() != 52 {
		t.Fatalf("deck len = %d", p.Len())
	}
	for _, s := range card.Suits {
		if n := p.SuitCount(s); n != 13 {
			t.Fatalf("suit %s has %d cards", s.Name(), n)
		}
	}
	assertHigh(t, p, card.CardHeartA)
}
