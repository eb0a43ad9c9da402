package symmetric

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/cryptokit/cryptoerr"
)

const inputMessage = "this is a test"

// Fixed vectors, cross-checked with `openssl enc -aes-256-cbc`.
var (
	fixedKey1 = mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	fixedKey2 = mustHex("1f1e1d1c1b1a191817161514131211100f0e0d0c0b0a09080706050403020100")
	fixedIV   = mustHex("a0a1a2a3a4a5a6a7a8a9aaabacadaeaf")
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestEncrypt_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		want      string
	}{
		{"short", inputMessage, "792342342265404545db186bf7ff7b4f"},
		{"empty", "", "600d07a3b9b2c4e4082153d6d1707aa6"},
		{"multi block", "The quick brown fox jumps over the lazy dog",
			"64bac78bf92341822f9cb229d5199006d90c3bab4f7eaa663a51e8c75086e82cabdf122926fa3b24d4f3c9bafa5236b6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encrypt(fixedKey1, fixedIV, tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := Decrypt(fixedKey1, fixedIV, got)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, back)
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key1, err := GenerateKey()
	require.NoError(t, err)
	iv1, err := GenerateIV()
	require.NoError(t, err)
	iv2, err := GenerateIV()
	require.NoError(t, err)

	cipherText1, err := Encrypt(key1, iv1, inputMessage)
	require.NoError(t, err)
	cipherText2, err := Encrypt(key1, iv1, inputMessage)
	require.NoError(t, err)
	cipherText3, err := Encrypt(key1, iv2, inputMessage)
	require.NoError(t, err)

	assert.Equal(t, cipherText1, cipherText2, "same key, iv and plaintext must give the same ciphertext")
	assert.NotEqual(t, cipherText1, cipherText3)

	for _, tc := range []struct {
		iv []byte
		ct string
	}{{iv1, cipherText1}, {iv1, cipherText2}, {iv2, cipherText3}} {
		got, err := Decrypt(key1, tc.iv, tc.ct)
		require.NoError(t, err)
		assert.Equal(t, inputMessage, got)
	}
}

func TestEncryptDecrypt_Plaintexts(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)

	for _, pt := range []string{"", "a", strings.Repeat("x", 15), strings.Repeat("x", 16), strings.Repeat("y", 17), "héllo wörld ✓", strings.Repeat("z", 10000)} {
		ct, err := Encrypt(key, iv, pt)
		require.NoError(t, err)
		assert.Zero(t, len(ct)%32, "hex ciphertext must be whole blocks")

		got, err := Decrypt(key, iv, ct)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	ct, err := Encrypt(fixedKey1, fixedIV, inputMessage)
	require.NoError(t, err)

	_, err = Decrypt(fixedKey2, fixedIV, ct)
	assert.ErrorIs(t, err, cryptoerr.ErrIntegrity)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_WrongIV(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	iv1, err := GenerateIV()
	require.NoError(t, err)

	ct, err := Encrypt(key, iv1, inputMessage)
	require.NoError(t, err)

	// Flipping the high bits of the last IV byte turns the 0x02 padding byte of
	// the single block into a value above 16.
	iv2 := bytes.Clone(iv1)
	iv2[15] ^= 0xf0

	_, err = Decrypt(key, iv2, ct)
	assert.ErrorIs(t, err, cryptoerr.ErrIntegrity)
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	tampered := "f92342342265404545db186bf7ff7b4f" // first nibble of the "short" vector altered

	_, err := Decrypt(fixedKey1, fixedIV, tampered)
	assert.ErrorIs(t, err, cryptoerr.ErrIntegrity)

	// A ciphertext produced under a different iv is a different ciphertext.
	iv2 := bytes.Clone(fixedIV)
	iv2[15] ^= 0xf0
	other, err := Encrypt(fixedKey1, iv2, inputMessage)
	require.NoError(t, err)
	_, err = Decrypt(fixedKey1, fixedIV, other)
	assert.ErrorIs(t, err, cryptoerr.ErrIntegrity)
}

func TestDecrypt_MalformedCiphertext(t *testing.T) {
	tests := []struct {
		name string
		ct   string
	}{
		{"empty", ""},
		{"not hex", "zz2342342265404545db186bf7ff7b4f"},
		{"odd length hex", "792"},
		{"partial block", "7923423422654045"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(fixedKey1, fixedIV, tt.ct)
			assert.ErrorIs(t, err, cryptoerr.ErrIntegrity)
		})
	}
}

func TestDecrypt_InvalidUTF8(t *testing.T) {
	raw := []byte{0xff, 0xfe, 0xfd}
	padded := pad(raw, 16)
	ct := make([]byte, len(padded))

	block, err := newBlock("test", fixedKey1, fixedIV)
	require.NoError(t, err)
	cipher.NewCBCEncrypter(block, fixedIV).CryptBlocks(ct, padded)

	_, err = Decrypt(fixedKey1, fixedIV, hex.EncodeToString(ct))
	assert.ErrorIs(t, err, cryptoerr.ErrIntegrity)
	assert.ErrorContains(t, err, "UTF-8")
}

func TestKeyMaterialSizes(t *testing.T) {
	tests := []struct {
		name    string
		key, iv []byte
		want    error
	}{
		{"short key", make([]byte, 16), fixedIV, ErrInvalidKeySize},
		{"long key", make([]byte, 64), fixedIV, ErrInvalidKeySize},
		{"nil key", nil, fixedIV, ErrInvalidKeySize},
		{"short iv", fixedKey1, make([]byte, 12), ErrInvalidIVSize},
		{"nil iv", fixedKey1, nil, ErrInvalidIVSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encrypt(tt.key, tt.iv, inputMessage)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, cryptoerr.ErrKeyMaterial)

			_, err = Decrypt(tt.key, tt.iv, "792342342265404545db186bf7ff7b4f")
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, cryptoerr.ErrKeyMaterial)
		})
	}
}

func TestGenerateKeyAndIV(t *testing.T) {
	key1, err := GenerateKey()
	require.NoError(t, err)
	key2, err := GenerateKey()
	require.NoError(t, err)
	assert.Len(t, key1, 32)
	assert.NotEqual(t, key1, key2)

	iv, err := GenerateIV()
	require.NoError(t, err)
	assert.Len(t, iv, 16)

	fixed := bytes.Repeat([]byte{0x42}, 48)
	r := bytes.NewReader(fixed)
	key, err := GenerateKeyWithRandom(r)
	require.NoError(t, err)
	assert.Equal(t, fixed[:32], key)
	iv, err = GenerateIVWithRandom(r)
	require.NoError(t, err)
	assert.Equal(t, fixed[32:], iv)

	_, err = GenerateIVWithRandom(r)
	assert.Error(t, err, "exhausted reader must fail")
}

func TestUnpad(t *testing.T) {
	block := func(tail ...byte) []byte {
		b := bytes.Repeat([]byte{'a'}, 16-len(tail))
		return append(b, tail...)
	}

	tests := []struct {
		name   string
		data   []byte
		wantOK bool
		want   int
	}{
		{"one byte pad", block(1), true, 15},
		{"two byte pad", block(2, 2), true, 14},
		{"full block pad", bytes.Repeat([]byte{16}, 16), true, 0},
		{"zero pad byte", block(0), false, 0},
		{"pad above block size", block(17), false, 0},
		{"inconsistent pad", block(3, 2, 3), false, 0},
		{"empty", nil, false, 0},
		{"partial block", []byte{1, 1, 1}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unpad(tt.data, 16)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Len(t, got, tt.want)
			}
		})
	}
}
