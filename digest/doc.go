// Package digest computes one-way, fixed-size fingerprints of text or bytes.
//
// Supported algorithms and their hex output lengths:
//
//	MD5     32 chars  (insecure, fast)
//	SHA1    40 chars  (legacy)
//	SHA256  64 chars
//	SHA512 128 chars
//
// Digests are pure functions of their input:
//
//	sum, err := digest.SHA256Hash(input.Text("abc"))
//	// sum == "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
//
// A nil input is rejected with cryptoerr.ErrTypeViolation before any hashing.
package digest
