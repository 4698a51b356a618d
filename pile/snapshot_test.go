package pile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pile-lite/card"
)

func TestSnapshot_EmptyPile(t *testing.T) {
	snap := New().Snapshot()
	if snap.HasHigh || len(snap.Cards) != 0 {
		t.Fatalf("unexpected snapshot of empty pile: %+v", snap)
	}
	p, err := FromSnapshot(snap, Config{})
	if err != nil {
		t.Fatalf("FromSnapshot err: %v", err)
	}
	if !p.IsEmpty() {
		t.Fatalf("expected empty pile")
	}
}

func TestFromSnapshot_KeepsTiedHighAfterShuffle(t *testing.T) {
	// swap the two aces so the high card sits behind its tie
	src := &scriptedSource{t: t, draws: []int{0}}
	p, err := NewWithConfig(Config{Source: src}, card.CardHeartA, card.CardSpadeA)
	if err != nil {
		t.Fatal(err)
	}
	p.Shuffle()
	assertHigh(t, p, card.CardHeartA)

	snap := p.Snapshot()
	restored, err := FromSnapshot(snap, Config{Seed: 1})
	if err != nil {
		t.Fatalf("FromSnapshot err: %v", err)
	}
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Fatalf("restored snapshot differs (-want +got):\n%s", diff)
	}
	if err := restored.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestFromSnapshot_RejectsBadHigh(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "outranked high",
			snap: Snapshot{Cards: []card.Card{card.CardHeart3, card.CardClubK}, High: card.CardHeart3, HasHigh: true},
		},
		{
			name: "high not in pile",
			snap: Snapshot{Cards: []card.Card{card.CardHeart3, card.CardClubK}, High: card.CardSpadeK, HasHigh: true},
		},
		{
			name: "missing high",
			snap: Snapshot{Cards: []card.Card{card.CardHeart3}},
		},
		{
			name: "high on empty pile",
			snap: Snapshot{High: card.CardHeart3, HasHigh: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromSnapshot(tt.snap, Config{}); !errors.Is(err, ErrHighMismatch) {
				t.Fatalf("expected ErrHighMismatch, got %v", err)
			}
		})
	}
}

func TestFromSnapshot_KeepsMode(t *testing.T) {
	p, err := NewWithConfig(Config{Shuffle: FullRangeSwap}, card.CardDiamond6)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := FromSnapshot(p.Snapshot(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if restored.Mode() != FullRangeSwap {
		t.Fatalf("mode = %s, want %s", restored.Mode(), FullRangeSwap)
	}
}
