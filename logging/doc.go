// Package logging provides the structured logging helper shared by every
// cryptokit package.
//
// All packages log through a single logrus logger, which defaults to
// logrus.StandardLogger() and can be swapped with [SetLogger]:
//
//	l := logrus.New()
//	l.SetLevel(logrus.DebugLevel)
//	logging.SetLogger(l)
//
// Each operation builds a [LoggerHelper] tagged with its package and function:
//
//	log := logging.NewLogger("symmetric", "Decrypt")
//	log.Entry("decrypting ciphertext")
//	defer log.Exit()
//
// # Sensitive Data
//
// The helpers never accept secret material. Use [SizeFields] to describe a key,
// password or plaintext by its length; never pass the bytes themselves.
package logging
