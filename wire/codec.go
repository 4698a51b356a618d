// Package wire encodes pile snapshots for handing piles between processes,
// in protobuf wire format or JSON.
package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"pile-lite/card"
	"pile-lite/pile"
)

const Version = 1

// Field numbers of the binary encoding. Absent fields take their zero value;
// unknown fields are skipped.
const (
	fieldVersion protowire.Number = 1
	fieldCards   protowire.Number = 2
	fieldMode    protowire.Number = 3
	fieldHigh    protowire.Number = 4
)

// Marshal encodes s. Cards are packed one byte each, bottom card first.
func Marshal(s pile.Snapshot) []byte {
	b := make([]byte, 0, 8+len(s.Cards))
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, Version)
	if len(s.Cards) > 0 {
		b = protowire.AppendTag(b, fieldCards, protowire.BytesType)
		b = protowire.AppendBytes(b, card.Cards2bytes(s.Cards))
	}
	if s.Mode != pile.FisherYates {
		b = protowire.AppendTag(b, fieldMode, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(s.Mode))
	}
	if s.HasHigh {
		b = protowire.AppendTag(b, fieldHigh, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(s.High))
	}
	return b
}

// Unmarshal decodes a snapshot produced by Marshal. It checks the encoding
// only; pile.FromSnapshot checks the contents.
func Unmarshal(b []byte) (pile.Snapshot, error) {
	var s pile.Snapshot
	version := uint64(0)
	for off := 0; off < len(b); {
		num, typ, n := protowire.ConsumeTag(b[off:])
		if n < 0 {
			return s, parseError(off, "bad_tag", protowire.ParseError(n))
		}
		off += n

		switch {
		case num == fieldCards && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b[off:])
			if n < 0 {
				return s, parseError(off, "bad_cards", protowire.ParseError(n))
			}
			cards, err := card.Bytes2Cards(v)
			if err != nil {
				return s, &DecodeError{Offset: off, Reason: "invalid_card", Message: err.Error()}
			}
			s.Cards = cards
			off += n
		case typ == protowire.VarintType && (num == fieldVersion || num == fieldMode || num == fieldHigh):
			v, n := protowire.ConsumeVarint(b[off:])
			if n < 0 {
				return s, parseError(off, "bad_varint", protowire.ParseError(n))
			}
			if err := setVarint(&s, &version, num, v); err != nil {
				return s, &DecodeError{Offset: off, Reason: "invalid_field", Message: err.Error()}
			}
			off += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, b[off:])
			if n < 0 {
				return s, parseError(off, "bad_field", protowire.ParseError(n))
			}
			off += n
		}
	}
	if version != Version {
		return s, &DecodeError{Offset: 0, Reason: "unsupported_version", Message: fmt.Sprintf("version %d", version)}
	}
	if s.Cards == nil {
		s.Cards = []card.Card{}
	}
	return s, nil
}

func setVarint(s *pile.Snapshot, version *uint64, num protowire.Number, v uint64) error {
	switch num {
	case fieldVersion:
		*version = v
	case fieldMode:
		if _, ok := pile.ShuffleModeDictionary[pile.ShuffleMode(v)]; !ok || v > 0xFF {
			return fmt.Errorf("unknown shuffle mode %d", v)
		}
		s.Mode = pile.ShuffleMode(v)
	case fieldHigh:
		c := card.Card(v)
		if v > 0xFF || !c.Valid() {
			return fmt.Errorf("invalid high card %d", v)
		}
		s.High, s.HasHigh = c, true
	}
	return nil
}

func parseError(off int, reason string, err error) error {
	return &DecodeError{Offset: off, Reason: reason, Message: err.Error()}
}

// Encode snapshots p and marshals it.
func Encode(p *pile.Pile) []byte {
	return Marshal(p.Snapshot())
}

// Decode unmarshals b and rebuilds the pile. cfg supplies the random source.
func Decode(b []byte, cfg pile.Config) (*pile.Pile, error) {
	s, err := Unmarshal(b)
	if err != nil {
		return nil, err
	}
	p, err := pile.FromSnapshot(s, cfg)
	if err != nil {
		return nil, fmt.Errorf("rebuild pile: %w", err)
	}
	return p, nil
}
