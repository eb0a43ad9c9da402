package asymmetric

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/opd-ai/cryptokit/logging"
)

// Sign signs the SHA-256 digest of message with RSASSA-PKCS1-v1_5 and returns
// the signature as lowercase hex. Signing is deterministic.
func Sign(key PrivateKeyHandle, message string) (string, error) {
	const op = "asymmetric.Sign"
	log := logging.NewLogger("asymmetric", "Sign").
		WithFields(logging.SizeFields("message", len(message)))

	if key == nil {
		return "", keyError(ErrMalformedPEM)
	}
	priv, err := key.privateKey()
	if err != nil {
		log.WithError(err, "key_material", "load_key").Debug("Could not load key")
		return "", err
	}

	digest := sha256.Sum256([]byte(message))
	sig, err := rsa.SignPKCS1v15(nil, priv, crypto.SHA256, digest[:])
	if err != nil {
		log.WithError(err, "sign", "pkcs1v15").Warn("Signing failed")
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return hex.EncodeToString(sig), nil
}

// Verify reports whether signatureHex is a valid signature of message under key.
// A mismatched or malformed signature yields false with a nil error; an error is
// returned only when the key cannot be loaded.
func Verify(key KeySource, message, signatureHex string) (bool, error) {
	log := logging.NewLogger("asymmetric", "Verify")

	if key == nil {
		return false, keyError(ErrMalformedPEM)
	}
	pub, err := key.publicKey()
	if err != nil {
		log.WithError(err, "key_material", "load_key").Debug("Could not load key")
		return false, err
	}

	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		log.Debug("Signature is not valid hex")
		return false, nil
	}

	digest := sha256.Sum256([]byte(message))
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig); err != nil {
		log.Debug("Signature mismatch")
		return false, nil
	}
	return true, nil
}
