// Package asymmetric implements RSA key pairs: generation, PEM loading,
// RSA-OAEP encryption and PKCS#1 v1.5 signatures over SHA-256.
//
// Keys travel as PEM text. Public keys use SPKI ("PUBLIC KEY") and private keys
// use PKCS#8 ("PRIVATE KEY"), or encrypted PKCS#8 ("ENCRYPTED PRIVATE KEY") when
// a passphrase was given at generation.
//
// Operations accept typed key handles rather than raw strings, so a protected
// private key can never be used without its passphrase:
//
//	kp, err := asymmetric.GenerateKeyPair("correct horse")
//	if err != nil {
//		return err
//	}
//	ct, err := asymmetric.Encrypt(kp.Public(), "hello")
//	pt, err := asymmetric.Decrypt(kp.Private("correct horse"), ct)
//
//	sig, err := asymmetric.Sign(asymmetric.ProtectedPrivateKey{PEM: kp.PrivateKey, Passphrase: "correct horse"}, "msg")
//	ok, err := asymmetric.Verify(asymmetric.PublicKey(kp.PublicKey), "msg", sig)
//
// A key that cannot be loaded (malformed PEM, wrong or missing passphrase,
// non-RSA key) fails with cryptoerr.ErrKeyMaterial. Verify never fails for a
// bad signature; it reports false.
package asymmetric
