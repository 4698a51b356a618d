package wire

import (
	"encoding/json"
	"fmt"

	"pile-lite/card"
	"pile-lite/pile"
)

type WirePile struct {
	Version int         `json:"version"`
	Cards   []card.Card `json:"cards"`
	High    *card.Card  `json:"high,omitempty"`
	Mode    string      `json:"mode"`
}

func ToWirePile(s pile.Snapshot) *WirePile {
	out := &WirePile{
		Version: Version,
		Cards:   append([]card.Card{}, s.Cards...),
		Mode:    s.Mode.String(),
	}
	if s.HasHigh {
		high := s.High
		out.High = &high
	}
	return out
}

func FromWirePile(w *WirePile) (pile.Snapshot, error) {
	var s pile.Snapshot
	if w == nil {
		return s, &DecodeError{Offset: -1, Reason: "missing_payload", Message: "nil pile"}
	}
	if w.Version != Version {
		return s, &DecodeError{Offset: -1, Reason: "unsupported_version", Message: fmt.Sprintf("version %d", w.Version)}
	}
	mode, err := pile.ParseShuffleMode(w.Mode)
	if err != nil {
		return s, &DecodeError{Offset: -1, Reason: "invalid_mode", Message: err.Error()}
	}
	s.Mode = mode
	s.Cards = append([]card.Card{}, w.Cards...)
	if w.High != nil {
		s.High, s.HasHigh = *w.High, true
	}
	return s, nil
}

// MarshalJSON encodes p's snapshot as a WirePile.
func MarshalJSON(p *pile.Pile) ([]byte, error) {
	return json.Marshal(ToWirePile(p.Snapshot()))
}

func UnmarshalJSON(b []byte, cfg pile.Config) (*pile.Pile, error) {
	var w WirePile
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, &DecodeError{Offset: -1, Reason: "invalid_json", Message: err.Error()}
	}
	s, err := FromWirePile(&w)
	if err != nil {
		return nil, err
	}
	p, err := pile.FromSnapshot(s, cfg)
	if err != nil {
		return nil, fmt.Errorf("rebuild pile: %w", err)
	}
	return p, nil
}
