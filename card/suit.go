package card

import (
	"fmt"
	"strings"
)

type Suit byte

const (
	Hearts   Suit = iota // ♥
	Diamonds             // ♦
	Clubs                // ♣
	Spades               // ♠
)

// Suits lists the four suits in index order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) Valid() bool {
	return s <= Spades
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Name 花色全称, e.g. "Hearts"
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", byte(s))
}

// letter is the single-char form used by Parse and MarshalText.
func (s Suit) letter() byte {
	return "hdcs?"[min(int(s), 4)]
}

// ParseSuit accepts a suit name ("Hearts"), letter ("h") or symbol ("♥").
func ParseSuit(raw string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "h", "hearts", "heart", "♥":
		return Hearts, nil
	case "d", "diamonds", "diamond", "♦":
		return Diamonds, nil
	case "c", "clubs", "club", "♣":
		return Clubs, nil
	case "s", "spades", "spade", "♠":
		return Spades, nil
	}
	return 0, fmt.Errorf("invalid suit: %q", raw)
}
