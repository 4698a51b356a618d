package card

import "fmt"

func Cards2bytes(cs []Card) []byte {
	out := make([]byte, 0, len(cs))
	for _, c := range cs {
		out = append(out, byte(c))
	}
	return out
}

// Bytes2Cards is the inverse of Cards2bytes; it rejects bytes that do not
// encode a valid card.
func Bytes2Cards(b []byte) ([]Card, error) {
	out := make([]Card, 0, len(b))
	for i, v := range b {
		c := Card(v)
		if !c.Valid() {
			return nil, fmt.Errorf("invalid card byte 0x%02x at %d", v, i)
		}
		out = append(out, c)
	}
	return out, nil
}
