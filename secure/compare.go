package secure

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b hold the same bytes. The time taken
// depends only on the lengths, never on where the first difference is.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
