package asymmetric

import (
	"crypto/rsa"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/limits"
	"github.com/opd-ai/cryptokit/logging"
	"github.com/opd-ai/cryptokit/secure"
)

// ErrDecryptionFailed is returned when a ciphertext does not decrypt under the given key.
var ErrDecryptionFailed = errors.New("oaep decryption error")

// Encrypt encrypts message for the holder of key using RSA-OAEP with SHA-1 and
// MGF1-SHA1, returning lowercase hex. Output is randomized: encrypting the same
// message twice gives different ciphertexts.
//
// The message may be at most limits.OAEPMaxMessageSize bytes (470 for a 4096-bit key);
// larger messages fail with limits.ErrMessageTooLarge.
func Encrypt(key KeySource, message string) (string, error) {
	return EncryptWithRandom(key, message, nil)
}

// EncryptWithRandom is Encrypt reading padding randomness from r (nil means the default source).
func EncryptWithRandom(key KeySource, message string, r io.Reader) (string, error) {
	const op = "asymmetric.Encrypt"
	log := logging.NewLogger("asymmetric", "Encrypt").
		WithFields(logging.SizeFields("message", len(message)))

	if key == nil {
		return "", keyError(ErrMalformedPEM)
	}
	pub, err := key.publicKey()
	if err != nil {
		log.WithError(err, "key_material", "load_key").Debug("Could not load key")
		return "", err
	}

	limit := limits.OAEPMaxMessageSize(pub.Size(), sha1.Size)
	if err := limits.ValidateMessageSize([]byte(message), limit); err != nil {
		log.WithField("max_size", limit).Debug("Message exceeds OAEP capacity")
		return "", cryptoerr.New(cryptoerr.ErrContractViolation, op, err)
	}

	ct, err := rsa.EncryptOAEP(sha1.New(), secure.Random(r), pub, []byte(message), nil)
	if err != nil {
		log.WithError(err, "encrypt", "oaep").Warn("OAEP encryption failed")
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("Encrypted message")
	return hex.EncodeToString(ct), nil
}

// Decrypt reverses Encrypt with the private key. A ciphertext that is not hex,
// was produced for another key, or was modified fails with cryptoerr.ErrIntegrity.
func Decrypt(key PrivateKeyHandle, ciphertextHex string) (string, error) {
	const op = "asymmetric.Decrypt"
	log := logging.NewLogger("asymmetric", "Decrypt")

	if key == nil {
		return "", keyError(ErrMalformedPEM)
	}
	priv, err := key.privateKey()
	if err != nil {
		log.WithError(err, "key_material", "load_key").Debug("Could not load key")
		return "", err
	}

	ct, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		log.Debug("Ciphertext is not valid hex")
		return "", cryptoerr.New(cryptoerr.ErrIntegrity, op, fmt.Errorf("%w: %v", ErrDecryptionFailed, err))
	}

	pt, err := rsa.DecryptOAEP(sha1.New(), nil, priv, ct, nil)
	if err != nil {
		log.Debug("OAEP decryption failed")
		return "", cryptoerr.New(cryptoerr.ErrIntegrity, op, ErrDecryptionFailed)
	}
	defer secure.ZeroBytes(pt)

	return string(pt), nil
}
