package mldsa

// ParameterSet is the immutable static configuration of one ML-DSA strength.
// The three instances defined by FIPS 204 are [MLDSA44], [MLDSA65] and
// [MLDSA87]; a ParameterSet is selected once per key and never mutated.
type ParameterSet struct {
	name string

	k, l       int    // matrix dimensions
	eta        int    // secret coefficient bound
	tau        int    // number of ±1s in the challenge polynomial
	omega      int    // maximum hint weight
	gamma1Bits int    // gamma1 = 1 << gamma1Bits, mask coefficient range
	gamma2     uint32 // low-order rounding range
	lambda     int    // collision strength of c-tilde, in bits
}

var (
	// MLDSA44 is the ML-DSA-44 parameter set.
	MLDSA44 = &ParameterSet{
		name: "ML-DSA-44",
		k:    4, l: 4,
		eta:        2,
		tau:        39,
		omega:      80,
		gamma1Bits: 17,
		gamma2:     gamma2QMinus1Div88,
		lambda:     128,
	}

	// MLDSA65 is the ML-DSA-65 parameter set.
	MLDSA65 = &ParameterSet{
		name: "ML-DSA-65",
		k:    6, l: 5,
		eta:        4,
		tau:        49,
		omega:      55,
		gamma1Bits: 19,
		gamma2:     gamma2QMinus1Div32,
		lambda:     192,
	}

	// MLDSA87 is the ML-DSA-87 parameter set.
	MLDSA87 = &ParameterSet{
		name: "ML-DSA-87",
		k:    8, l: 7,
		eta:        2,
		tau:        60,
		omega:      75,
		gamma1Bits: 19,
		gamma2:     gamma2QMinus1Div32,
		lambda:     256,
	}
)

// Name returns the FIPS 204 name of the parameter set, e.g. "ML-DSA-65".
func (p *ParameterSet) Name() string { return p.name }

// gamma1 returns the mask coefficient range 2^gamma1Bits.
func (p *ParameterSet) gamma1() uint32 { return 1 << p.gamma1Bits }

// beta = eta * tau, the rejection margin.
func (p *ParameterSet) beta() uint32 { return uint32(p.eta * p.tau) }

// etaWidth is the packed width of a secret coefficient: bitlength(2*eta).
func (p *ParameterSet) etaWidth() uint {
	if p.eta == 2 {
		return 3
	}
	return 4
}

// zWidth is the packed width of a response coefficient.
func (p *ParameterSet) zWidth() uint { return uint(p.gamma1Bits) + 1 }

// w1Width is the packed width of a high-bits coefficient: 6 bits when the
// decomposition has 44 buckets, 4 bits when it has 16.
func (p *ParameterSet) w1Width() uint {
	if p.gamma2 == gamma2QMinus1Div88 {
		return 6
	}
	return 4
}

// cTildeSize is the size of the commitment digest in bytes.
func (p *ParameterSet) cTildeSize() int { return p.lambda / 4 }

// PublicKeySize returns the encoded public key size in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return 32 + p.k*n*10/8
}

// PrivateKeySize returns the encoded private key size in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return 32 + 32 + 64 + (p.k+p.l)*n*int(p.etaWidth())/8 + p.k*n*13/8
}

// SignatureSize returns the encoded signature size in bytes.
func (p *ParameterSet) SignatureSize() int {
	return p.cTildeSize() + p.l*n*int(p.zWidth())/8 + p.omega + p.k
}
