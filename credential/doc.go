// Package credential salts and hashes user passwords and verifies them later.
//
// # Creating a Record
//
// [CreateRecord] enforces the strength policy, draws a fresh 16-byte salt, and
// derives a 64-byte key with scrypt (N=16384, r=8, p=1):
//
//	rec, err := credential.CreateRecord("alice", "Bar123^^")
//	// rec.Salt is 32 hex chars, rec.HashedPassword is 128 hex chars
//
// The policy requires a non-empty username and password, at least 8
// characters, and at least one lowercase letter, uppercase letter, digit and
// symbol from  - ! @ # $ % ^ & * ( ) = _ + , . ? < > ; : ' " { } | ` ~
// Violations are reported as cryptoerr.ErrPolicyViolation.
//
// The scrypt salt is the hex text stored in the record, so records written by
// other implementations following the same convention verify here.
//
// # Verifying
//
//	ok, err := credential.Verify("alice", attempt, rec)
//
// The derived keys are compared in constant time. Verifying against a record
// for a different username returns cryptoerr.ErrIdentityMismatch: the caller
// looked up the wrong record, which is not the same as a wrong password.
package credential
