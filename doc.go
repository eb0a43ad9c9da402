// Package cryptokit provides a small set of cryptographic primitives for
// application code: digests, HMAC, salted password records, AES-256-CBC and
// RSA-4096 key pairs.
//
// Each primitive lives in its own package (digest, mac, credential, symmetric,
// asymmetric) and can be used directly. Kit bundles them behind one configured
// value so an application can inject its entropy source and logger once:
//
//	kit := cryptokit.New(cryptokit.NewOptions())
//
//	tag, err := kit.MAC(mac.SHA256, input.Text("message"), input.Text("key"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec, err := kit.CreateRecord("alice", "Bar123^^")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := kit.VerifyRecord("alice", "Bar123^^", rec)
//
//	key, _ := kit.GenerateSymmetricKey()
//	iv, _ := kit.GenerateIV()
//	ct, err := kit.EncryptSymmetric(key, iv, "hello")
//
// # Errors
//
// Failures are returned as *cryptoerr.Error values classified by kind
// (type violation, contract violation, policy violation, identity mismatch,
// key material, integrity). Match them with errors.Is against either the kind
// or the package-specific sentinel. Verification mismatches are reported as
// false, never as errors.
//
// # Logging
//
// All packages log through logrus via the logging package. Secrets never reach
// the log; only their sizes do.
package cryptokit
