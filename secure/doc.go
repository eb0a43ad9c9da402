// Package secure holds the low-level helpers every cryptokit primitive relies on:
// the injectable random source, memory wiping, and constant-time comparison.
//
// # Randomness
//
// Salts, symmetric keys, IVs, RSA keys and OAEP padding all draw from a random
// source. Production code uses crypto/rand.Reader. Tests may swap the
// package-level default, or pass an explicit reader to the WithRandom variants
// exposed by each primitive package:
//
//	orig := secure.DefaultRandom()
//	defer secure.SetDefaultRandom(orig)
//	secure.SetDefaultRandom(bytes.NewReader(fixed))
//
// # Wiping
//
// Derived keys and decrypted buffers should be wiped as soon as they have been
// encoded for the caller:
//
//	defer secure.ZeroBytes(derived)
//
// # Comparison
//
// [ConstantTimeEqual] compares secrets without leaking the position of the
// first mismatching byte through timing.
package secure
