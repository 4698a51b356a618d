package wire

import "fmt"

// DecodeError reports why an encoded pile could not be read. Offset is the
// byte position for binary input and -1 for JSON input.
type DecodeError struct {
	Offset  int    `json:"offset"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("decode error(offset=%d reason=%s): %s", e.Offset, e.Reason, e.Message)
}
