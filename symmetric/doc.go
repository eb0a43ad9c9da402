// Package symmetric provides AES-256 in CBC mode with PKCS#7 padding.
//
// Keys (32 bytes) and IVs (16 bytes) are generated independently and supplied
// together to every call; storing and pairing them is the caller's job:
//
//	key, _ := symmetric.GenerateKey()
//	iv, _ := symmetric.GenerateIV()
//	ct, _ := symmetric.Encrypt(key, iv, "this is a test") // hex
//	pt, err := symmetric.Decrypt(key, iv, ct)
//
// Encryption is deterministic for a fixed key and iv. Use a fresh iv per
// message when repeated plaintexts must not be recognisable.
//
// CBC carries no authentication tag. Decrypt rejects malformed hex, partial
// blocks, structurally invalid padding and non-UTF-8 plaintext with
// cryptoerr.ErrIntegrity, which catches the overwhelming majority of
// wrong-key, wrong-iv and tampered inputs; it cannot detect every alteration.
package symmetric
