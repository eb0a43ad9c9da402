// Package limits provides centralized size constants and validation functions
// for the cryptokit primitives. This package ensures every component agrees on
// key, IV, salt and digest sizes.
//
// # Size Contracts
//
//   - SymmetricKeySize (32 bytes): AES-256 key.
//   - IVSize (16 bytes): one AES block, the CBC initialization vector.
//   - SaltSize (16 bytes): random credential salt, hex-encoded to 32 characters.
//   - DerivedKeySize (64 bytes): scrypt output, hex-encoded to 128 characters.
//   - MinPasswordLength (8): shortest password accepted at record creation.
//   - RSAKeyBits (4096): modulus size of generated key pairs.
//
// The scrypt work factors (N=16384, r=8, p=1) are fixed and not caller-tunable.
//
// # Validation Functions
//
// Fixed-size values are checked with ValidateExactSize:
//
//	if err := limits.ValidateExactSize("key", key, limits.SymmetricKeySize); err != nil {
//	    // errors.Is(err, limits.ErrInvalidSize)
//	}
//
// RSA-OAEP can only encrypt short messages. OAEPMaxMessageSize computes the
// ceiling for a modulus and hash, and ValidateMessageSize enforces it:
//
//	max := limits.OAEPMaxMessageSize(pub.Size(), sha1.Size) // 470 for RSA-4096
//	err := limits.ValidateMessageSize(msg, max)
package limits
