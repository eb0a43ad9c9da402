package input

import (
	"errors"

	"github.com/opd-ai/cryptokit/cryptoerr"
)

// ErrNotTextOrBytes is returned when a value is neither text nor a byte sequence.
var ErrNotTextOrBytes = errors.New("input must be a string or buffer")

// Input is a value that is either text or raw bytes.
// The interface is sealed: only Text and Bytes implement it.
type Input interface {
	Bytes() []byte
	isInput()
}

// Text is a UTF-8 (or ASCII) text input.
type Text string

// Bytes returns the UTF-8 encoding of the text.
func (t Text) Bytes() []byte { return []byte(t) }

func (Text) isInput() {}

// Bytes is a raw byte sequence input.
type Bytes []byte

// Bytes returns the underlying bytes.
func (b Bytes) Bytes() []byte { return b }

func (Bytes) isInput() {}

// From converts a dynamically typed value into an Input.
// Only string, []byte, Text and Bytes are accepted.
func From(v any) (Input, error) {
	switch val := v.(type) {
	case Text:
		return val, nil
	case Bytes:
		return val, nil
	case string:
		return Text(val), nil
	case []byte:
		return Bytes(val), nil
	default:
		return nil, cryptoerr.New(cryptoerr.ErrTypeViolation, "input.From", ErrNotTextOrBytes)
	}
}

// Check returns the bytes of in, or a type violation wrapping cause when in is nil.
// Primitives use it to reject missing values before touching any cryptographic state.
func Check(in Input, op string, cause error) ([]byte, error) {
	if in == nil {
		return nil, cryptoerr.New(cryptoerr.ErrTypeViolation, op, cause)
	}
	b := in.Bytes()
	if b == nil {
		b = []byte{}
	}
	return b, nil
}
