package credential

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/limits"
	"github.com/opd-ai/cryptokit/logging"
	"github.com/opd-ai/cryptokit/secure"
)

var (
	// ErrWrongRecord is returned when a record is verified against another username.
	ErrWrongRecord = errors.New("wrong db record looked up")

	// ErrMalformedRecord is returned when a stored hash is not 128 hex characters.
	ErrMalformedRecord = errors.New("malformed credential record")
)

// Record is the stored form of a user's credential. It is immutable once created.
type Record struct {
	Username       string `json:"username"`
	Salt           string `json:"salt"`
	HashedPassword string `json:"hashedPassword"`
}

// derive runs scrypt over the password with the hex salt text as the salt.
func derive(password, salt string) ([]byte, error) {
	return scrypt.Key([]byte(password), []byte(salt), limits.ScryptN, limits.ScryptR, limits.ScryptP, limits.DerivedKeySize)
}

// CreateRecord validates the password policy and returns a freshly salted record.
func CreateRecord(username, password string) (*Record, error) {
	return CreateRecordWithRandom(username, password, nil)
}

// CreateRecordWithRandom is CreateRecord drawing the salt from r.
// A nil r uses the package-level random source.
func CreateRecordWithRandom(username, password string, r io.Reader) (*Record, error) {
	const op = "credential.CreateRecord"
	log := logging.NewLogger("credential", "CreateRecord").
		WithFields(logging.SizeFields("password", len(password)))
	log.Entry("creating credential record")
	defer log.Exit()

	if err := CheckPolicy(username, password); err != nil {
		log.WithError(err, "policy_violation", "check_policy").Debug("Password rejected by policy")
		return nil, err
	}

	saltBytes, err := secure.ReadRandom(r, limits.SaltSize)
	if err != nil {
		log.WithError(err, "entropy", "generate_salt").Warn("Failed to generate salt")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	salt := hex.EncodeToString(saltBytes)

	derived, err := derive(password, salt)
	if err != nil {
		log.WithError(err, "kdf", "derive_key").Warn("Password derivation failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer secure.ZeroBytes(derived)

	return &Record{
		Username:       username,
		Salt:           salt,
		HashedPassword: hex.EncodeToString(derived),
	}, nil
}

// Verify reports whether password matches the record.
// A record belonging to a different username is caller misuse and returns
// ErrWrongRecord instead of false.
func Verify(username, password string, record *Record) (bool, error) {
	const op = "credential.Verify"
	log := logging.NewLogger("credential", "Verify")

	if record == nil {
		return false, cryptoerr.New(cryptoerr.ErrContractViolation, op, ErrMalformedRecord)
	}
	if username != record.Username {
		log.Warn("Credential record does not belong to the supplied username")
		return false, cryptoerr.New(cryptoerr.ErrIdentityMismatch, op, ErrWrongRecord)
	}

	stored, err := hex.DecodeString(record.HashedPassword)
	if err != nil || len(stored) != limits.DerivedKeySize {
		log.Debug("Stored hash is not a 64-byte hex value")
		return false, cryptoerr.New(cryptoerr.ErrContractViolation, op, ErrMalformedRecord)
	}

	derived, err := derive(password, record.Salt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer secure.ZeroBytes(derived)

	return secure.ConstantTimeEqual(derived, stored), nil
}
