package secure

import (
	"testing"
)

func TestWipe(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	if err := Wipe(data); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}

	for i, b := range data {
		if b != 0 {
			t.Fatalf("Wipe failed to zero byte at position %d", i)
		}
	}
}

func TestWipe_Nil(t *testing.T) {
	if err := Wipe(nil); err == nil {
		t.Error("Wipe(nil) should return an error")
	}
}

func TestZeroBytes(t *testing.T) {
	testData := []byte{1, 2, 3, 4, 5}
	ZeroBytes(testData)

	for i, b := range testData {
		if b != 0 {
			t.Fatalf("ZeroBytes failed to zero byte at position %d", i)
		}
	}

	// Must not panic on nil
	ZeroBytes(nil)
}
