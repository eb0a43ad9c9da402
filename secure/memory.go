package secure

import (
	"crypto/subtle"
	"errors"
	"runtime"
)

// Wipe attempts to securely erase the contents of a byte slice
// containing sensitive data. It returns an error if the byte slice is nil.
func Wipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	// The XOR pass keeps the compiler from treating the copy below as a dead store.
	zeros := make([]byte, len(data))
	subtle.XORBytes(data, data, data)
	copy(data, zeros)

	runtime.KeepAlive(data)
	runtime.KeepAlive(zeros)

	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from Wipe.
func ZeroBytes(data []byte) {
	_ = Wipe(data)
}
