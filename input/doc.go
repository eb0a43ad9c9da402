// Package input defines the text-or-bytes value accepted by the digest and MAC
// primitives.
//
// [Input] is a closed union of [Text] and [Bytes]. Statically typed callers
// simply wrap their value:
//
//	digest.SHA256Hash(input.Text("abc"))
//	digest.SHA256Hash(input.Bytes(raw))
//
// Callers holding a dynamically typed value (decoded JSON, a generic map) use
// [From], which rejects anything that is not a string or a byte slice with a
// cryptoerr.ErrTypeViolation. A nil Input is treated the same way.
package input
