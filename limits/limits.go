package limits

import (
	"errors"
	"fmt"
)

const (
	// SymmetricKeySize is the AES-256 key size in bytes.
	SymmetricKeySize = 32

	// IVSize is the AES block size, and therefore the CBC IV size, in bytes.
	IVSize = 16

	// SaltSize is the number of random bytes in a credential salt (32 hex chars).
	SaltSize = 16

	// DerivedKeySize is the scrypt output length for credential hashes (128 hex chars).
	DerivedKeySize = 64

	// MinPasswordLength is the shortest password accepted at record creation.
	MinPasswordLength = 8

	// RSAKeyBits is the modulus size of generated key pairs.
	RSAKeyBits = 4096

	// ScryptN, ScryptR and ScryptP are the fixed scrypt work factors.
	ScryptN = 1 << 14
	ScryptR = 8
	ScryptP = 1

	// PBKDF2Iterations is the iteration count used to derive the key that
	// protects a passphrase-encrypted private key.
	PBKDF2Iterations = 100000

	// PBKDF2SaltSize is the salt length for private key encryption.
	PBKDF2SaltSize = 16
)

var (
	// ErrMessageTooLarge indicates a message exceeds what the primitive can process
	ErrMessageTooLarge = errors.New("message too large")

	// ErrInvalidSize indicates a key, IV or other fixed-size value has the wrong length
	ErrInvalidSize = errors.New("invalid size")
)

// ValidateMessageSize validates a message against the specified maximum size.
// Empty messages are allowed. Returns an error with the actual and maximum sizes.
func ValidateMessageSize(message []byte, maxSize int) error {
	if len(message) > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrMessageTooLarge, len(message), maxSize)
	}
	return nil
}

// ValidateExactSize checks that a fixed-size value such as a key or IV has exactly want bytes.
func ValidateExactSize(name string, value []byte, want int) error {
	if len(value) != want {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrInvalidSize, name, len(value), want)
	}
	return nil
}

// OAEPMaxMessageSize returns the largest plaintext RSA-OAEP can encrypt for a
// modulus of modulusBytes using a hash of hashSize bytes (RFC 8017, 7.1.1).
// It returns 0 when the modulus is too small for the hash.
func OAEPMaxMessageSize(modulusBytes, hashSize int) int {
	n := modulusBytes - 2*hashSize - 2
	if n < 0 {
		return 0
	}
	return n
}
