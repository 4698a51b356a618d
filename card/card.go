package card

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Card 牌
//
// 编码规则:
// - 高4位: 花色 (0:Hearts, 1:Diamonds, 2:Clubs, 3:Spades)
// - 低4位: 点数强度 (2..10, 11:J, 12:Q, 13:K, 14:A)
type Card byte

// New packs a suit and rank into a Card. No validation is done, so callers
// holding untrusted values should check Valid.
func New(s Suit, r Rank) Card {
	return Card(byte(s)<<4 | byte(r)&0x0F)
}

func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}
	return c.Rank().String() + c.Suit().String()
}

// Rank 获取点数 2-14 (A=14)
func (c Card) Rank() Rank {
	return Rank(c & 0x0F)
}

func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

// Value returns the rank strength used for ordering; suit plays no part.
func (c Card) Value() int {
	return c.Rank().Value()
}

func (c Card) Valid() bool {
	return c.Suit().Valid() && c.Rank().Valid()
}

// Compare orders by rank value only: 1 if c outranks other, -1 if it is
// outranked, 0 on equal rank.
func (c Card) Compare(other Card) int {
	a, b := c.Value(), other.Value()
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// Parse 将字符串 (如 "As", "Td", "10h", "A♠") 转换为 Card
func Parse(cardStr string) (Card, error) {
	cardStr = strings.TrimSpace(cardStr)
	if len(cardStr) < 2 {
		return CardInvalid, fmt.Errorf("invalid card string: %q", cardStr)
	}

	// 花色取最后一个字符 (可能是 "♥" 这类多字节符号)
	_, size := utf8.DecodeLastRuneInString(cardStr)
	if size >= len(cardStr) {
		return CardInvalid, fmt.Errorf("invalid card string: %q", cardStr)
	}
	suit, err := ParseSuit(cardStr[len(cardStr)-size:])
	if err != nil {
		return CardInvalid, err
	}
	rank, err := ParseRank(cardStr[:len(cardStr)-size])
	if err != nil {
		return CardInvalid, err
	}
	return New(suit, rank), nil
}

// MarshalText encodes a Card as "As", "Th", "2c".
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card: 0x%02x", byte(c))
	}
	return []byte{c.Rank().String()[0], c.Suit().letter()}, nil
}

func (c *Card) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
