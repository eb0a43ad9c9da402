package credential

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/opd-ai/cryptokit/cryptoerr"
	"github.com/opd-ai/cryptokit/limits"
)

// symbols is the accepted special-character class.
const symbols = "-!@#$%^&*()=_+,.?<>;:'\"{}|`~"

var (
	// ErrMissingCredentials is returned when the username or password is empty.
	ErrMissingCredentials = errors.New("must supply a username and password")

	// ErrPasswordTooShort is returned when the password has fewer than 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrWeakPassword is returned when a character class is missing.
	ErrWeakPassword = errors.New("password must have at least one lower, one upper, one number, and one special character")
)

// CheckPolicy applies the record-creation policy to a username and password.
func CheckPolicy(username, password string) error {
	const op = "credential.CheckPolicy"

	if username == "" || password == "" {
		return cryptoerr.New(cryptoerr.ErrPolicyViolation, op, ErrMissingCredentials)
	}
	if utf8.RuneCountInString(password) < limits.MinPasswordLength {
		return cryptoerr.New(cryptoerr.ErrPolicyViolation, op, ErrPasswordTooShort)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(symbols, r):
			symbol = true
		}
	}
	if !(lower && upper && digit && symbol) {
		return cryptoerr.New(cryptoerr.ErrPolicyViolation, op, ErrWeakPassword)
	}
	return nil
}
