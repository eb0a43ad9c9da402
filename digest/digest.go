package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/input"
	"github.com/opd-ai/cryptokit/logging"
)

// Algorithm identifies a digest function.
type Algorithm int

const (
	// MD5 is fast and broken; use it only for non-adversarial fingerprints.
	MD5 Algorithm = iota + 1
	// SHA1 is kept for legacy interoperability.
	SHA1
	SHA256
	SHA512
)

// ErrUnsupportedAlgorithm is returned for an Algorithm outside the supported set.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Size returns the digest length in bytes, or 0 for an unsupported algorithm.
// The hex form is twice as long.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	default:
		return 0
	}
}

// New returns a fresh hash.Hash for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// ParseAlgorithm maps a name such as "sha256" or "SHA-256" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "") {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, cryptoerr.New(cryptoerr.ErrContractViolation, "digest.ParseAlgorithm",
			fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name))
	}
}

// Sum returns the lowercase hex digest of data.
// data is validated before any hashing takes place.
func Sum(alg Algorithm, data input.Input) (string, error) {
	const op = "digest.Sum"
	log := logging.NewLogger("digest", "Sum").WithField("algorithm", alg.String())

	b, err := input.Check(data, op, input.ErrNotTextOrBytes)
	if err != nil {
		log.WithError(err, "type_violation", "validate_input").Debug("Rejected digest input")
		return "", err
	}

	h, err := alg.New()
	if err != nil {
		log.WithError(err, "contract_violation", "select_algorithm").Debug("Rejected digest algorithm")
		return "", cryptoerr.New(cryptoerr.ErrContractViolation, op, err)
	}

	h.Write(b)
	sum := hex.EncodeToString(h.Sum(nil))

	log.WithFields(logging.SizeFields("data", len(b))).Debug("Computed digest")
	return sum, nil
}

// MD5Hash returns the hex MD5 digest of data.
func MD5Hash(data input.Input) (string, error) { return Sum(MD5, data) }

// SHA1Hash returns the hex SHA-1 digest of data.
func SHA1Hash(data input.Input) (string, error) { return Sum(SHA1, data) }

// SHA256Hash returns the hex SHA-256 digest of data.
func SHA256Hash(data input.Input) (string, error) { return Sum(SHA256, data) }

// SHA512Hash returns the hex SHA-512 digest of data.
func SHA512Hash(data input.Input) (string, error) { return Sum(SHA512, data) }
