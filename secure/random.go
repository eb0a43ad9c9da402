package secure

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

var (
	randomMu      sync.RWMutex
	defaultRandom io.Reader = rand.Reader
)

// SetDefaultRandom sets the package-level random source for testing.
// Pass nil to reset to crypto/rand.Reader.
func SetDefaultRandom(r io.Reader) {
	if r == nil {
		r = rand.Reader
	}
	randomMu.Lock()
	defaultRandom = r
	randomMu.Unlock()
}

// DefaultRandom returns the current package-level random source.
func DefaultRandom() io.Reader {
	randomMu.RLock()
	defer randomMu.RUnlock()
	return defaultRandom
}

// Random returns r, or the package-level source when r is nil.
func Random(r io.Reader) io.Reader {
	if r == nil {
		return DefaultRandom()
	}
	return r
}

// ReadRandom reads exactly n bytes from r (or the default source when r is nil).
func ReadRandom(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid random length: %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(Random(r), buf); err != nil {
		return nil, fmt.Errorf("failed to read %d random bytes: %w", n, err)
	}
	return buf, nil
}
