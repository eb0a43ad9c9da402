package mac

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/input"
	"github.com/opd-ai/cryptokit/logging"
	"github.com/opd-ai/cryptokit/secure"
)

// Algorithm identifies the hash underlying the HMAC.
type Algorithm int

const (
	SHA256 Algorithm = iota + 1
	SHA512
)

var (
	// ErrInvalidMessage is returned when the message is not text or bytes.
	ErrInvalidMessage = errors.New("input message must be a string or buffer")

	// ErrInvalidKey is returned when the key is not text or bytes.
	ErrInvalidKey = errors.New("input key must be a string or buffer")

	// ErrMissingKey is returned when the key is empty.
	ErrMissingKey = errors.New("must specify a key")

	// ErrUnsupportedAlgorithm is returned for an Algorithm outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported mac algorithm")
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Size returns the tag length in bytes, or 0 for an unsupported algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	default:
		return 0
	}
}

func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// validate applies the checks in their fixed order: message type, key type,
// key presence, then algorithm.
func validate(op string, alg Algorithm, message, key input.Input) (msg, k []byte, newHash func() hash.Hash, err error) {
	if msg, err = input.Check(message, op, ErrInvalidMessage); err != nil {
		return nil, nil, nil, err
	}
	if k, err = input.Check(key, op, ErrInvalidKey); err != nil {
		return nil, nil, nil, err
	}
	if len(k) == 0 {
		return nil, nil, nil, cryptoerr.New(cryptoerr.ErrContractViolation, op, ErrMissingKey)
	}
	if newHash, err = alg.hashFunc(); err != nil {
		return nil, nil, nil, cryptoerr.New(cryptoerr.ErrContractViolation, op, err)
	}
	return msg, k, newHash, nil
}

func compute(newHash func() hash.Hash, msg, key []byte) []byte {
	m := hmac.New(newHash, key)
	m.Write(msg)
	return m.Sum(nil)
}

// Sum returns the lowercase hex HMAC of message under key.
func Sum(alg Algorithm, message, key input.Input) (string, error) {
	log := logging.NewLogger("mac", "Sum").WithField("algorithm", alg.String())

	msg, k, newHash, err := validate("mac.Sum", alg, message, key)
	if err != nil {
		log.WithError(err, "validation", "validate_inputs").Debug("Rejected MAC inputs")
		return "", err
	}

	tag := compute(newHash, msg, k)
	log.WithFields(logging.SizeFields("message", len(msg))).Debug("Computed MAC")
	return hex.EncodeToString(tag), nil
}

// SHA256HMAC returns the hex HMAC-SHA256 of message under key.
func SHA256HMAC(message, key input.Input) (string, error) { return Sum(SHA256, message, key) }

// SHA512HMAC returns the hex HMAC-SHA512 of message under key.
func SHA512HMAC(message, key input.Input) (string, error) { return Sum(SHA512, message, key) }

// Verify reports whether tagHex is the full-length HMAC of message under key.
// Inputs are validated exactly as in Sum. A tag that is not valid hex or has
// the wrong length is a mismatch, not an error. The comparison is constant-time.
func Verify(alg Algorithm, message, key input.Input, tagHex string) (bool, error) {
	log := logging.NewLogger("mac", "Verify").WithField("algorithm", alg.String())

	msg, k, newHash, err := validate("mac.Verify", alg, message, key)
	if err != nil {
		log.WithError(err, "validation", "validate_inputs").Debug("Rejected MAC inputs")
		return false, err
	}

	given, err := hex.DecodeString(tagHex)
	if err != nil {
		log.Debug("MAC tag is not valid hex")
		return false, nil
	}

	expected := compute(newHash, msg, k)
	return secure.ConstantTimeEqual(expected, given), nil
}
