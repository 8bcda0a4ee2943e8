// Package mldsa implements ML-DSA (Module-Lattice Digital Signature Algorithm)
// as specified in FIPS 204.
//
// ML-DSA is a post-quantum digital signature scheme standardized by NIST.
// This package supports three security levels, selected through a
// [ParameterSet]:
//   - [MLDSA44]: NIST security level 2 (comparable to AES-128)
//   - [MLDSA65]: NIST security level 3 (comparable to AES-192)
//   - [MLDSA87]: NIST security level 5 (comparable to AES-256)
//
// Basic usage:
//
//	key, err := mldsa.GenerateKey(mldsa.MLDSA65, rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	sig, err := key.Sign(rand.Reader, message, nil)
//	if err != nil {
//	    // handle error
//	}
//	valid := key.PublicKey().Verify(sig, message, nil)
//
// Passing a nil reader to Sign selects the standard's deterministic signing
// variant; a non-nil reader selects the hedged variant.
//
// Key and signature byte layouts follow the FIPS 204 size tables exactly.
// Container formats (PKCS#8, certificates) and crypto.Signer adapters are
// left to consumers of this package.
package mldsa

// Global ML-DSA constants from FIPS 204.
const (
	// n is the number of coefficients in polynomials.
	n = 256

	// q is the modulus: q = 2^23 - 2^13 + 1 = 8380417
	q = 8380417

	// d is the number of dropped bits from t.
	d = 13

	// SeedSize is the size of the random seed used for key generation.
	SeedSize = 32
)

// Derived constants.
const (
	qMinus1Div2 = (q - 1) / 2

	// gamma2 values for the two rounding granularities
	gamma2QMinus1Div88 = (q - 1) / 88 // ML-DSA-44
	gamma2QMinus1Div32 = (q - 1) / 32 // ML-DSA-65, ML-DSA-87
)
