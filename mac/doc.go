// Package mac computes keyed message authentication codes (HMAC-SHA256 and
// HMAC-SHA512) over text or bytes.
//
// Inputs are validated in a fixed order so the failure is always identifiable:
//
//  1. message must be text or bytes  -> ErrInvalidMessage (cryptoerr.ErrTypeViolation)
//  2. key must be text or bytes      -> ErrInvalidKey     (cryptoerr.ErrTypeViolation)
//  3. key must not be empty          -> ErrMissingKey     (cryptoerr.ErrContractViolation)
//
// Tags are deterministic and returned as lowercase hex. [Verify] recomputes the
// tag and compares in constant time, returning false rather than an error on a
// mismatch. Only full-length tags are produced and accepted; callers that need
// a truncated tag slice the hex string themselves.
package mac
