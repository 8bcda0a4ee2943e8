package mldsa

import (
	"crypto/subtle"
	"io"
)

// PrivateKey is an ML-DSA private key in expanded form.
type PrivateKey struct {
	params *ParameterSet
	rho    [32]byte      // Public seed
	key    [32]byte      // Private seed for signing
	tr     [64]byte      // H(pk)
	s1     []ringElement // Secret vector, length l
	s2     []ringElement // Secret vector, length k
	t0     []ringElement // Low bits of t, length k
	a      []nttElement  // Matrix A in NTT form, k*l row-major
}

// PublicKey is an ML-DSA public key.
type PublicKey struct {
	params *ParameterSet
	rho    [32]byte      // Public seed
	t1     []ringElement // High bits of t, length k
	tr     [64]byte      // H(pk)
	a      []nttElement  // Matrix A in NTT form, k*l row-major
}

// Key is a key pair retaining its generation seed.
type Key struct {
	PrivateKey
	seed [32]byte
	t1   []ringElement
}

// GenerateKey generates a new key pair for the given parameter set, reading
// the seed from rand.
func GenerateKey(p *ParameterSet, rand io.Reader) (*Key, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	return NewKey(p, seed[:])
}

// NewKey derives a key pair from a 32-byte seed.
// Implements FIPS 204 Algorithm 6 (ML-DSA.KeyGen_internal).
func NewKey(p *ParameterSet, seed []byte) (*Key, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeedLength
	}

	key := &Key{}
	key.params = p
	copy(key.seed[:], seed)
	key.generate()
	return key, nil
}

func (key *Key) generate() {
	p := key.params

	expanded := hashH(128, key.seed[:], []byte{byte(p.k), byte(p.l)})
	copy(key.rho[:], expanded[:32])
	rhoPrime := expanded[32:96]
	copy(key.key[:], expanded[96:128])

	key.s1, key.s2 = expandS(p, rhoPrime)
	key.a = expandA(p, key.rho[:])

	s1Hat := make([]nttElement, p.l)
	for i := range s1Hat {
		s1Hat[i] = ntt(key.s1[i])
	}

	key.t1 = make([]ringElement, p.k)
	key.t0 = make([]ringElement, p.k)
	for i := 0; i < p.k; i++ {
		var acc nttElement
		for j := 0; j < p.l; j++ {
			acc = polyAdd(acc, nttMul(key.a[i*p.l+j], s1Hat[j]))
		}
		t := polyAdd(invNTT(acc), key.s2[i])

		for j := 0; j < n; j++ {
			key.t1[i][j], key.t0[i][j] = power2Round(t[j])
		}
	}

	pkBytes := pkEncode(p, key.rho[:], key.t1)
	copy(key.tr[:], hashH(64, pkBytes))
}

// ParameterSet returns the key pair's parameter set.
func (key *Key) ParameterSet() *ParameterSet { return key.params }

// PublicKey returns the public key.
func (key *Key) PublicKey() *PublicKey {
	return &PublicKey{
		params: key.params,
		rho:    key.rho,
		t1:     key.t1,
		tr:     key.tr,
		a:      key.a,
	}
}

// Bytes returns the 32-byte generation seed, the compact private key form.
func (key *Key) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, key.seed[:])
	return b
}

// PrivateKeyBytes returns the full encoded private key.
func (key *Key) PrivateKeyBytes() []byte {
	return key.PrivateKey.Bytes()
}

// PublicKeyBytes returns the encoded public key.
func (key *Key) PublicKeyBytes() []byte {
	return pkEncode(key.params, key.rho[:], key.t1)
}

// ParameterSet returns the key's parameter set.
func (sk *PrivateKey) ParameterSet() *ParameterSet { return sk.params }

// Bytes returns the encoded private key.
func (sk *PrivateKey) Bytes() []byte {
	return skEncode(sk.params, sk.rho[:], sk.key[:], sk.tr[:], sk.s1, sk.s2, sk.t0)
}

// ParameterSet returns the key's parameter set.
func (pk *PublicKey) ParameterSet() *ParameterSet { return pk.params }

// Bytes returns the encoded public key.
func (pk *PublicKey) Bytes() []byte {
	return pkEncode(pk.params, pk.rho[:], pk.t1)
}

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk.params != other.params {
		return false
	}
	return subtle.ConstantTimeCompare(pk.Bytes(), other.Bytes()) == 1
}

// NewPublicKey parses an encoded public key, re-expanding the matrix A and
// recomputing tr.
func NewPublicKey(p *ParameterSet, b []byte) (*PublicKey, error) {
	rho, t1, err := pkDecode(p, b)
	if err != nil {
		return nil, err
	}

	pk := &PublicKey{params: p, rho: rho, t1: t1}
	pk.a = expandA(p, pk.rho[:])
	copy(pk.tr[:], hashH(64, b))
	return pk, nil
}

// NewPrivateKey parses an encoded private key.
func NewPrivateKey(p *ParameterSet, b []byte) (*PrivateKey, error) {
	rho, key, tr, s1, s2, t0, err := skDecode(p, b)
	if err != nil {
		return nil, err
	}

	sk := &PrivateKey{
		params: p,
		rho:    rho,
		key:    key,
		tr:     tr,
		s1:     s1,
		s2:     s2,
		t0:     t0,
	}
	sk.a = expandA(p, sk.rho[:])
	return sk, nil
}
