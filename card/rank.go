package card

import (
	"fmt"
	"strings"
)

// Rank 点数, the numeric value is the rank strength (2..14, Ace high).
type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// rankTable is the rank ordering table: label -> strength.
// Built once at package init and never written afterwards.
var rankTable = map[string]int{
	"2":     2,
	"3":     3,
	"4":     4,
	"5":     5,
	"6":     6,
	"7":     7,
	"8":     8,
	"9":     9,
	"10":    10,
	"Jack":  11,
	"Queen": 12,
	"King":  13,
	"Ace":   14,
}

var rankLabels = [...]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

var rankShort = [...]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

// RankValue looks up the strength of a rank label such as "10" or "Queen".
func RankValue(label string) (int, bool) {
	v, ok := rankTable[label]
	return v, ok
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Label returns the long label ("10", "Jack", "Ace").
func (r Rank) Label() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", byte(r))
	}
	return rankLabels[r]
}

// Value returns the strength from the rank ordering table, 0 for invalid ranks.
func (r Rank) Value() int {
	if !r.Valid() {
		return 0
	}
	return rankTable[rankLabels[r]]
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankShort[r]
}

// ParseRank accepts long labels ("Queen", "10") and short forms ("Q", "T").
func ParseRank(raw string) (Rank, error) {
	s := strings.TrimSpace(raw)
	for r := Two; r <= Ace; r++ {
		if strings.EqualFold(s, rankLabels[r]) || strings.EqualFold(s, rankShort[r]) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rank: %s", raw)
}
