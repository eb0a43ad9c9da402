package asymmetric

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	"github.com/youmark/pkcs8"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/limits"
	"github.com/opd-ai/cryptokit/logging"
	"github.com/opd-ai/cryptokit/secure"
)

// KeyPair holds a PEM-encoded RSA key pair. PublicKey is an SPKI "PUBLIC KEY"
// block. PrivateKey is a PKCS#8 "PRIVATE KEY" block, or an "ENCRYPTED PRIVATE
// KEY" block when the pair was generated with a passphrase.
type KeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// Public returns the public key as a key handle.
func (kp *KeyPair) Public() PublicKey {
	return PublicKey(kp.PublicKey)
}

// Private returns the private key as a key handle. The passphrase must be the
// one given at generation and is ignored for an unprotected key.
func (kp *KeyPair) Private(passphrase string) PrivateKeyHandle {
	if passphrase == "" {
		return PrivateKey(kp.PrivateKey)
	}
	return ProtectedPrivateKey{PEM: kp.PrivateKey, Passphrase: passphrase}
}

// GenerateKeyPair creates a fresh RSA-4096 key pair with public exponent 65537.
// A non-empty passphrase encrypts the private key (PBES2, AES-256-CBC with a
// PBKDF2-SHA256 derived key). Generation takes from hundreds of milliseconds
// to several seconds; see GenerateKeyPairContext for a cancellable variant.
func GenerateKeyPair(passphrase string) (*KeyPair, error) {
	return generateKeyPair(context.Background(), nil, limits.RSAKeyBits, passphrase)
}

// GenerateKeyPairWithRandom is GenerateKeyPair reading from r (nil means the default source).
func GenerateKeyPairWithRandom(passphrase string, r io.Reader) (*KeyPair, error) {
	return generateKeyPair(context.Background(), r, limits.RSAKeyBits, passphrase)
}

// GenerateKeyPairContext is GenerateKeyPair that returns early with ctx.Err()
// when ctx is done before generation completes.
func GenerateKeyPairContext(ctx context.Context, passphrase string, r io.Reader) (*KeyPair, error) {
	return generateKeyPair(ctx, r, limits.RSAKeyBits, passphrase)
}

type generated struct {
	kp  *KeyPair
	err error
}

func generateKeyPair(ctx context.Context, r io.Reader, bits int, passphrase string) (*KeyPair, error) {
	log := logging.NewLogger("asymmetric", "GenerateKeyPair").
		WithField("key_bits", bits).
		WithField("protected", passphrase != "")
	log.Entry("generating RSA key pair")
	defer log.Exit()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan generated, 1)
	go func() {
		kp, err := buildKeyPair(secure.Random(r), bits, passphrase)
		done <- generated{kp, err}
	}()

	select {
	case <-ctx.Done():
		log.WithError(ctx.Err(), "cancelled", "generate").Debug("Key generation abandoned")
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			log.WithFields(logging.OperationFields("generate", "failed")).
				WithError(res.err, "key_material", "generate").Warn("Key generation failed")
			return nil, res.err
		}
		log.WithFields(logging.OperationFields("generate", "completed")).Info("Generated RSA key pair")
		return res.kp, nil
	}
}

func buildKeyPair(r io.Reader, bits int, passphrase string) (*KeyPair, error) {
	const op = "asymmetric.GenerateKeyPair"

	priv, err := rsa.GenerateKey(r, bits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, cryptoerr.New(cryptoerr.ErrKeyMaterial, op, err)
	}

	privType := pemPrivateKey
	var privDER []byte
	if passphrase == "" {
		privDER, err = x509.MarshalPKCS8PrivateKey(priv)
	} else {
		privType = pemEncryptedPrivateKey
		privDER, err = pkcs8.MarshalPrivateKey(priv, []byte(passphrase), &pkcs8.Opts{
			Cipher: pkcs8.AES256CBC,
			KDFOpts: pkcs8.PBKDF2Opts{
				SaltSize:       limits.PBKDF2SaltSize,
				IterationCount: limits.PBKDF2Iterations,
				HMACHash:       crypto.SHA256,
			},
		})
	}
	if err != nil {
		return nil, cryptoerr.New(cryptoerr.ErrKeyMaterial, op, err)
	}
	defer secure.ZeroBytes(privDER)

	return &KeyPair{
		PublicKey:  string(pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: pubDER})),
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: privType, Bytes: privDER})),
	}, nil
}
