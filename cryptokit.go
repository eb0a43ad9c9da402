package cryptokit

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/cryptokit/asymmetric"
	"github.com/opd-ai/cryptokit/credential"
	"github.com/opd-ai/cryptokit/digest"
	"github.com/opd-ai/cryptokit/input"
	"github.com/opd-ai/cryptokit/logging"
	"github.com/opd-ai/cryptokit/mac"
	"github.com/opd-ai/cryptokit/secure"
	"github.com/opd-ai/cryptokit/symmetric"
)

// Options contains configuration options for creating a Kit.
type Options struct {
	// Random is the entropy source for salts, keys, IVs and OAEP padding.
	Random io.Reader

	// Logger receives the structured logs of every primitive. It is installed
	// process-wide by New.
	Logger *logrus.Logger
}

// NewOptions creates a new default options object.
func NewOptions() *Options {
	return &Options{
		Random: secure.DefaultRandom(),
		Logger: logrus.StandardLogger(),
	}
}

// Kit bundles the primitives behind a single configured value. A Kit holds no
// secrets and is safe for concurrent use.
type Kit struct {
	random io.Reader
}

// New creates a Kit. Nil options, or nil fields, fall back to NewOptions defaults.
func New(options *Options) *Kit {
	defaults := NewOptions()
	if options == nil {
		options = defaults
	}

	random := options.Random
	if random == nil {
		random = defaults.Random
	}
	if options.Logger != nil {
		logging.SetLogger(options.Logger)
	}

	logging.NewLogger("cryptokit", "New").Debug("Created crypto kit")
	return &Kit{random: random}
}

// Digest returns the lowercase hex digest of data.
func (k *Kit) Digest(alg digest.Algorithm, data input.Input) (string, error) {
	return digest.Sum(alg, data)
}

// MAC returns the lowercase hex HMAC of message under key.
func (k *Kit) MAC(alg mac.Algorithm, message, key input.Input) (string, error) {
	return mac.Sum(alg, message, key)
}

// VerifyMAC reports whether tagHex is the HMAC of message under key.
func (k *Kit) VerifyMAC(alg mac.Algorithm, message, key input.Input, tagHex string) (bool, error) {
	return mac.Verify(alg, message, key, tagHex)
}

// CreateRecord applies the password policy and returns a salted credential record.
func (k *Kit) CreateRecord(username, password string) (*credential.Record, error) {
	return credential.CreateRecordWithRandom(username, password, k.random)
}

// VerifyRecord checks password against a record created for username.
func (k *Kit) VerifyRecord(username, password string, record *credential.Record) (bool, error) {
	return credential.Verify(username, password, record)
}

// GenerateSymmetricKey returns a fresh 32-byte AES-256 key.
func (k *Kit) GenerateSymmetricKey() ([]byte, error) {
	return symmetric.GenerateKeyWithRandom(k.random)
}

// GenerateIV returns a fresh 16-byte IV.
func (k *Kit) GenerateIV() ([]byte, error) {
	return symmetric.GenerateIVWithRandom(k.random)
}

// EncryptSymmetric encrypts plaintext with AES-256-CBC and returns hex.
func (k *Kit) EncryptSymmetric(key, iv []byte, plaintext string) (string, error) {
	return symmetric.Encrypt(key, iv, plaintext)
}

// DecryptSymmetric reverses EncryptSymmetric.
func (k *Kit) DecryptSymmetric(key, iv []byte, ciphertextHex string) (string, error) {
	return symmetric.Decrypt(key, iv, ciphertextHex)
}

// GenerateKeyPair creates an RSA-4096 key pair, encrypting the private key
// when passphrase is not empty.
func (k *Kit) GenerateKeyPair(passphrase string) (*asymmetric.KeyPair, error) {
	return asymmetric.GenerateKeyPairWithRandom(passphrase, k.random)
}

// GenerateKeyPairContext is GenerateKeyPair bounded by ctx.
func (k *Kit) GenerateKeyPairContext(ctx context.Context, passphrase string) (*asymmetric.KeyPair, error) {
	return asymmetric.GenerateKeyPairContext(ctx, passphrase, k.random)
}

// EncryptAsymmetric encrypts message with RSA-OAEP and returns hex.
func (k *Kit) EncryptAsymmetric(key asymmetric.KeySource, message string) (string, error) {
	return asymmetric.EncryptWithRandom(key, message, k.random)
}

// DecryptAsymmetric reverses EncryptAsymmetric.
func (k *Kit) DecryptAsymmetric(key asymmetric.PrivateKeyHandle, ciphertextHex string) (string, error) {
	return asymmetric.Decrypt(key, ciphertextHex)
}

// Sign returns the hex RSA PKCS#1 v1.5 SHA-256 signature of message.
func (k *Kit) Sign(key asymmetric.PrivateKeyHandle, message string) (string, error) {
	return asymmetric.Sign(key, message)
}

// VerifySignature reports whether signatureHex signs message under key.
func (k *Kit) VerifySignature(key asymmetric.KeySource, message, signatureHex string) (bool, error) {
	return asymmetric.Verify(key, message, signatureHex)
}
