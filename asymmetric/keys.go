package asymmetric

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/youmark/pkcs8"

	"github.com/opd-ai/cryptokit/cryptoerr"
)

// PEM block types.
const (
	pemPublicKey           = "PUBLIC KEY"
	pemRSAPublicKey        = "RSA PUBLIC KEY"
	pemPrivateKey          = "PRIVATE KEY"
	pemEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemRSAPrivateKey       = "RSA PRIVATE KEY"
)

var (
	// ErrMalformedPEM is returned when the key text holds no PEM block.
	ErrMalformedPEM = errors.New("key is not PEM encoded")

	// ErrUnsupportedKey is returned for PEM blocks or key algorithms other than RSA.
	ErrUnsupportedKey = errors.New("unsupported key type")

	// ErrPassphraseRequired is returned when an encrypted private key is used without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required for encrypted private key")

	// ErrWrongPassphrase is returned when an encrypted private key cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted private key")
)

// KeySource is a key handle from which an RSA public key can be loaded.
// PublicKey, PrivateKey and ProtectedPrivateKey all implement it.
type KeySource interface {
	publicKey() (*rsa.PublicKey, error)
}

// PrivateKeyHandle is a key handle from which an RSA private key can be loaded:
// either a plain PrivateKey or a ProtectedPrivateKey.
type PrivateKeyHandle interface {
	KeySource
	privateKey() (*rsa.PrivateKey, error)
}

// PublicKey is a PEM-encoded public key. A PEM private key is also accepted,
// in which case its public half is used.
type PublicKey string

// PrivateKey is an unencrypted PEM-encoded private key.
type PrivateKey string

// ProtectedPrivateKey is a passphrase-encrypted PEM private key with its passphrase.
type ProtectedPrivateKey struct {
	PEM        string
	Passphrase string
}

func (k PublicKey) publicKey() (*rsa.PublicKey, error) {
	block, err := decodePEM(string(k))
	if err != nil {
		return nil, err
	}
	switch block.Type {
	case pemPublicKey:
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, keyError(fmt.Errorf("%w: %v", ErrMalformedPEM, err))
		}
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, keyError(fmt.Errorf("%w: %T", ErrUnsupportedKey, pub))
		}
		return rsaPub, nil
	case pemRSAPublicKey:
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, keyError(fmt.Errorf("%w: %v", ErrMalformedPEM, err))
		}
		return pub, nil
	case pemPrivateKey, pemRSAPrivateKey, pemEncryptedPrivateKey:
		priv, err := parsePrivateBlock(block, "")
		if err != nil {
			return nil, err
		}
		return &priv.PublicKey, nil
	default:
		return nil, keyError(fmt.Errorf("%w: PEM block %q", ErrUnsupportedKey, block.Type))
	}
}

func (k PrivateKey) privateKey() (*rsa.PrivateKey, error) {
	block, err := decodePEM(string(k))
	if err != nil {
		return nil, err
	}
	return parsePrivateBlock(block, "")
}

func (k PrivateKey) publicKey() (*rsa.PublicKey, error) {
	priv, err := k.privateKey()
	if err != nil {
		return nil, err
	}
	return &priv.PublicKey, nil
}

func (k ProtectedPrivateKey) privateKey() (*rsa.PrivateKey, error) {
	block, err := decodePEM(k.PEM)
	if err != nil {
		return nil, err
	}
	return parsePrivateBlock(block, k.Passphrase)
}

func (k ProtectedPrivateKey) publicKey() (*rsa.PublicKey, error) {
	priv, err := k.privateKey()
	if err != nil {
		return nil, err
	}
	return &priv.PublicKey, nil
}

func keyError(err error) error {
	return cryptoerr.New(cryptoerr.ErrKeyMaterial, "asymmetric.loadKey", err)
}

func decodePEM(text string) (*pem.Block, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, keyError(ErrMalformedPEM)
	}
	return block, nil
}

// parsePrivateBlock loads an RSA private key. The passphrase is only consulted
// for ENCRYPTED PRIVATE KEY blocks.
func parsePrivateBlock(block *pem.Block, passphrase string) (*rsa.PrivateKey, error) {
	switch block.Type {
	case pemEncryptedPrivateKey:
		if passphrase == "" {
			return nil, keyError(ErrPassphraseRequired)
		}
		priv, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, keyError(fmt.Errorf("%w: %v", ErrWrongPassphrase, err))
		}
		return priv, nil
	case pemPrivateKey:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, keyError(fmt.Errorf("%w: %v", ErrMalformedPEM, err))
		}
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, keyError(fmt.Errorf("%w: %T", ErrUnsupportedKey, key))
		}
		return priv, nil
	case pemRSAPrivateKey:
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, keyError(fmt.Errorf("%w: %v", ErrMalformedPEM, err))
		}
		return priv, nil
	default:
		return nil, keyError(fmt.Errorf("%w: PEM block %q is not a private key", ErrUnsupportedKey, block.Type))
	}
}
