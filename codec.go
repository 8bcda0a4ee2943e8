package mldsa

// Encoded sizes of a single polynomial, bytes.
const (
	encodedT1Size = n * 10 / 8
	encodedT0Size = n * 13 / 8
)

// pkEncode serializes a public key: rho || t1 packed at 10 bits.
// Implements FIPS 204 Algorithm 22.
func pkEncode(p *ParameterSet, rho []byte, t1 []ringElement) []byte {
	b := make([]byte, p.PublicKeySize())
	copy(b[:32], rho)
	offset := 32
	for i := range t1 {
		bitPack(b[offset:offset+encodedT1Size], t1[i], 10)
		offset += encodedT1Size
	}
	return b
}

// pkDecode parses a public key encoding. The 10-bit width covers the t1
// range completely, so only the length is validated.
// Implements FIPS 204 Algorithm 23.
func pkDecode(p *ParameterSet, b []byte) (rho [32]byte, t1 []ringElement, err error) {
	if len(b) != p.PublicKeySize() {
		return rho, nil, &DecodeError{Field: "public key length"}
	}
	copy(rho[:], b[:32])
	t1 = make([]ringElement, p.k)
	offset := 32
	for i := range t1 {
		bitUnpack(b[offset:offset+encodedT1Size], &t1[i], 10)
		offset += encodedT1Size
	}
	return rho, t1, nil
}

// skEncode serializes a private key:
// rho || K || tr || s1 || s2 || t0, secrets packed at the eta width and t0
// at 13 bits, both range-shifted. Implements FIPS 204 Algorithm 24.
func skEncode(p *ParameterSet, rho, key, tr []byte, s1, s2, t0 []ringElement) []byte {
	b := make([]byte, p.PrivateKeySize())
	copy(b[:32], rho)
	copy(b[32:64], key)
	copy(b[64:128], tr)

	eta := fieldElement(p.eta)
	width := p.etaWidth()
	etaSize := n * int(width) / 8

	offset := 128
	for i := range s1 {
		bitPackRange(b[offset:offset+etaSize], s1[i], eta, width)
		offset += etaSize
	}
	for i := range s2 {
		bitPackRange(b[offset:offset+etaSize], s2[i], eta, width)
		offset += etaSize
	}
	for i := range t0 {
		bitPackRange(b[offset:offset+encodedT0Size], t0[i], 1<<(d-1), 13)
		offset += encodedT0Size
	}
	return b
}

// skDecode parses a private key encoding, rejecting any secret coefficient
// outside [-eta, eta] before the key is used anywhere.
// Implements FIPS 204 Algorithm 25.
func skDecode(p *ParameterSet, b []byte) (rho, key [32]byte, tr [64]byte, s1, s2, t0 []ringElement, err error) {
	if len(b) != p.PrivateKeySize() {
		err = &DecodeError{Field: "private key length"}
		return
	}
	copy(rho[:], b[:32])
	copy(key[:], b[32:64])
	copy(tr[:], b[64:128])

	eta := fieldElement(p.eta)
	width := p.etaWidth()
	etaSize := n * int(width) / 8

	s1 = make([]ringElement, p.l)
	s2 = make([]ringElement, p.k)
	t0 = make([]ringElement, p.k)

	offset := 128
	for i := range s1 {
		if !bitUnpackEta(b[offset:offset+etaSize], &s1[i], eta, width) {
			err = &DecodeError{Field: "s1"}
			return
		}
		offset += etaSize
	}
	for i := range s2 {
		if !bitUnpackEta(b[offset:offset+etaSize], &s2[i], eta, width) {
			err = &DecodeError{Field: "s2"}
			return
		}
		offset += etaSize
	}
	for i := range t0 {
		bitUnpackRange(b[offset:offset+encodedT0Size], &t0[i], 1<<(d-1), 13)
		offset += encodedT0Size
	}
	return rho, key, tr, s1, s2, t0, nil
}

// sigEncode serializes a signature: c-tilde || z || hints.
// Implements FIPS 204 Algorithm 26.
func sigEncode(p *ParameterSet, cTilde []byte, z, hints []ringElement) []byte {
	b := make([]byte, p.SignatureSize())
	copy(b, cTilde)

	gamma1 := fieldElement(p.gamma1())
	width := p.zWidth()
	zSize := n * int(width) / 8

	offset := p.cTildeSize()
	for i := range z {
		bitPackRange(b[offset:offset+zSize], z[i], gamma1, width)
		offset += zSize
	}
	hintEncode(b[offset:], hints, p.omega)
	return b
}

// sigDecode parses a signature encoding. The z width covers its declared
// range completely; the hint block is fully validated structurally. The
// z norm bound is a verification condition, checked by the caller before
// any use of z. Implements FIPS 204 Algorithm 27.
func sigDecode(p *ParameterSet, b []byte) (cTilde []byte, z, hints []ringElement, err error) {
	if len(b) != p.SignatureSize() {
		return nil, nil, nil, &DecodeError{Field: "signature length"}
	}
	cTilde = b[:p.cTildeSize()]

	gamma1 := fieldElement(p.gamma1())
	width := p.zWidth()
	zSize := n * int(width) / 8

	z = make([]ringElement, p.l)
	offset := p.cTildeSize()
	for i := range z {
		bitUnpackRange(b[offset:offset+zSize], &z[i], gamma1, width)
		offset += zSize
	}

	hints = make([]ringElement, p.k)
	if !hintDecode(b[offset:], hints, p.omega) {
		return nil, nil, nil, &DecodeError{Field: "hint"}
	}
	return cTilde, z, hints, nil
}

// hintEncode stores the hint vector as ascending true-bit indices per
// entry followed by k cumulative-count terminators, omega+k bytes total.
// The caller guarantees total weight <= omega.
// Implements FIPS 204 Algorithm 20 (HintBitPack).
func hintEncode(b []byte, hints []ringElement, omega int) {
	idx := 0
	for i := range hints {
		for j := 0; j < n; j++ {
			if hints[i][j] != 0 {
				b[idx] = byte(j)
				idx++
			}
		}
		b[omega+i] = byte(idx)
	}
}

// hintDecode parses a hint block, enforcing non-decreasing terminators,
// strictly ascending indices within each entry, the omega weight bound and
// zeroed padding. Implements FIPS 204 Algorithm 21 (HintBitUnpack).
func hintDecode(b []byte, hints []ringElement, omega int) bool {
	idx := 0
	for i := range hints {
		limit := int(b[omega+i])
		if limit < idx || limit > omega {
			return false
		}
		first := idx
		for ; idx < limit; idx++ {
			pos := b[idx]
			if idx > first && b[idx-1] >= pos {
				return false
			}
			hints[i][pos] = 1
		}
	}
	for ; idx < omega; idx++ {
		if b[idx] != 0 {
			return false
		}
	}
	return true
}
