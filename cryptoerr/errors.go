// Package cryptoerr defines the error kinds shared by every cryptokit primitive.
//
// Each primitive package declares its own specific sentinels and returns them
// wrapped in an [*Error], so callers can match either the broad kind or the
// precise cause:
//
//	_, err := mac.SHA256HMAC(input.Text("msg"), input.Text(""))
//	errors.Is(err, cryptoerr.ErrContractViolation) // true
//	errors.Is(err, mac.ErrMissingKey)              // true
//
// Verification mismatches are never errors; they are reported as false.
package cryptoerr

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrTypeViolation is returned when an input is neither text nor bytes.
	ErrTypeViolation = errors.New("type violation")

	// ErrContractViolation is returned when an input has the right type but
	// breaks the calling contract (missing MAC key, unknown algorithm, malformed record).
	ErrContractViolation = errors.New("contract violation")

	// ErrPolicyViolation is returned when credentials fail the strength policy.
	ErrPolicyViolation = errors.New("policy violation")

	// ErrIdentityMismatch is returned when a credential record belongs to another user.
	ErrIdentityMismatch = errors.New("identity mismatch")

	// ErrKeyMaterial is returned when key material cannot be loaded or has the wrong shape.
	ErrKeyMaterial = errors.New("key material error")

	// ErrIntegrity is returned when decryption cannot produce a consistent plaintext.
	ErrIntegrity = errors.New("integrity error")
)

// Error records the kind, the failing operation and the specific cause.
type Error struct {
	Kind error
	Op   string
	Err  error
}

// New wraps err as an error of the given kind raised by op.
func New(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the specific cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the error kind.
func (e *Error) Is(target error) bool { return target == e.Kind }
