package symmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/limits"
	"github.com/opd-ai/cryptokit/logging"
	"github.com/opd-ai/cryptokit/secure"
)

var (
	// ErrInvalidKeySize is returned when the key is not 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV is not 16 bytes.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrDecryptionFailed is returned when key, iv and ciphertext do not form
	// a consistent triple.
	ErrDecryptionFailed = errors.New("bad decrypt")
)

// GenerateKey returns 32 random bytes for use as an AES-256 key.
func GenerateKey() ([]byte, error) {
	return GenerateKeyWithRandom(nil)
}

// GenerateKeyWithRandom is GenerateKey reading from r (nil means the default source).
func GenerateKeyWithRandom(r io.Reader) ([]byte, error) {
	key, err := secure.ReadRandom(r, limits.SymmetricKeySize)
	if err != nil {
		return nil, fmt.Errorf("symmetric.GenerateKey: %w", err)
	}
	return key, nil
}

// GenerateIV returns 16 random bytes for use as a CBC initialization vector.
func GenerateIV() ([]byte, error) {
	return GenerateIVWithRandom(nil)
}

// GenerateIVWithRandom is GenerateIV reading from r (nil means the default source).
func GenerateIVWithRandom(r io.Reader) ([]byte, error) {
	iv, err := secure.ReadRandom(r, limits.IVSize)
	if err != nil {
		return nil, fmt.Errorf("symmetric.GenerateIV: %w", err)
	}
	return iv, nil
}

func newBlock(op string, key, iv []byte) (cipher.Block, error) {
	if err := limits.ValidateExactSize("key", key, limits.SymmetricKeySize); err != nil {
		return nil, cryptoerr.New(cryptoerr.ErrKeyMaterial, op, fmt.Errorf("%w: %v", ErrInvalidKeySize, err))
	}
	if err := limits.ValidateExactSize("iv", iv, limits.IVSize); err != nil {
		return nil, cryptoerr.New(cryptoerr.ErrKeyMaterial, op, fmt.Errorf("%w: %v", ErrInvalidIVSize, err))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoerr.New(cryptoerr.ErrKeyMaterial, op, err)
	}
	return block, nil
}

// Encrypt encrypts plaintext with AES-256-CBC and PKCS#7 padding and returns
// lowercase hex. The same key, iv and plaintext always give the same output;
// callers wanting distinct ciphertexts must vary the iv.
func Encrypt(key, iv []byte, plaintext string) (string, error) {
	const op = "symmetric.Encrypt"
	log := logging.NewLogger("symmetric", "Encrypt").
		WithFields(logging.SizeFields("plaintext", len(plaintext)))

	block, err := newBlock(op, key, iv)
	if err != nil {
		log.WithError(err, "key_material", "new_cipher").Debug("Rejected key material")
		return "", err
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	defer secure.ZeroBytes(padded)

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	log.Debug("Encrypted plaintext")
	return hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. It fails with cryptoerr.ErrIntegrity when the
// ciphertext is malformed, the padding is invalid, or the recovered plaintext
// is not valid UTF-8.
func Decrypt(key, iv []byte, ciphertextHex string) (string, error) {
	const op = "symmetric.Decrypt"
	log := logging.NewLogger("symmetric", "Decrypt")

	block, err := newBlock(op, key, iv)
	if err != nil {
		log.WithError(err, "key_material", "new_cipher").Debug("Rejected key material")
		return "", err
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		log.Debug("Ciphertext is not valid hex")
		return "", cryptoerr.New(cryptoerr.ErrIntegrity, op, fmt.Errorf("%w: %v", ErrDecryptionFailed, err))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		log.WithFields(logging.SizeFields("ciphertext", len(ciphertext))).Debug("Ciphertext is not whole blocks")
		return "", cryptoerr.New(cryptoerr.ErrIntegrity, op,
			fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d", ErrDecryptionFailed, len(ciphertext), aes.BlockSize))
	}

	buf := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, ciphertext)
	defer secure.ZeroBytes(buf)

	plaintext, ok := unpad(buf, aes.BlockSize)
	if !ok {
		log.Debug("Padding check failed")
		return "", cryptoerr.New(cryptoerr.ErrIntegrity, op, ErrDecryptionFailed)
	}
	if !utf8.Valid(plaintext) {
		log.Debug("Recovered plaintext is not valid UTF-8")
		return "", cryptoerr.New(cryptoerr.ErrIntegrity, op, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryptionFailed))
	}

	return string(plaintext), nil
}

// pad appends PKCS#7 padding; a full block is added when data is already aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad strips PKCS#7 padding. Every padding byte of the final block is
// examined regardless of where a mismatch occurs.
func unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])

	good := subtle.ConstantTimeLessOrEq(1, n) & subtle.ConstantTimeLessOrEq(n, blockSize)
	last := data[len(data)-blockSize:]
	for i := 0; i < blockSize; i++ {
		inPad := subtle.ConstantTimeLessOrEq(blockSize-i, n)
		match := subtle.ConstantTimeByteEq(last[i], byte(n))
		good &= match | (inPad ^ 1)
	}
	if good != 1 {
		return nil, false
	}
	return data[:len(data)-n], true
}
