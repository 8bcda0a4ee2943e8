package mldsa

// rejNTTPoly generates a uniformly random polynomial directly in NTT domain
// using rejection sampling from SHAKE128 output, keyed by rho and the
// matrix position (s, r). Implements FIPS 204 Algorithm 30 (RejNTTPoly).
func rejNTTPoly(rho []byte, s, r byte) nttElement {
	h := xofG(rho, []byte{s, r})

	var buf [rate128]byte
	var a nttElement
	j := 0

	for {
		h.Read(buf[:])
		for i := 0; i < len(buf) && j < n; i += 3 {
			// Extract 24 bits, mask to 23 bits
			c := uint32(buf[i]) | uint32(buf[i+1])<<8 | (uint32(buf[i+2])&0x7f)<<16
			if c < q {
				a[j] = fieldElement(c)
				j++
			}
		}
		if j >= n {
			return a
		}
	}
}

// rejBoundedPoly generates a polynomial with coefficients in [-eta, eta]
// using rejection sampling from SHAKE256 output. The accept rule depends
// on eta: nibbles < 15 reduced mod 5 for eta=2, nibbles <= 8 for eta=4.
// Implements FIPS 204 Algorithm 31 (RejBoundedPoly).
func rejBoundedPoly(seed []byte, eta int, nonce uint16) ringElement {
	h := xofH(seed, []byte{byte(nonce), byte(nonce >> 8)})

	var buf [rate256]byte
	var a ringElement
	j := 0
	offset := 0

	h.Read(buf[:])

	for j < n {
		if offset >= len(buf) {
			h.Read(buf[:])
			offset = 0
		}

		z0 := buf[offset] & 0x0f
		z1 := buf[offset] >> 4
		offset++

		if eta == 2 {
			if z0 < 15 {
				a[j] = fieldSub(2, fieldElement(z0%5))
				j++
			}
			if j < n && z1 < 15 {
				a[j] = fieldSub(2, fieldElement(z1%5))
				j++
			}
		} else { // eta == 4
			if z0 <= 8 {
				a[j] = fieldSub(4, fieldElement(z0))
				j++
			}
			if j < n && z1 <= 8 {
				a[j] = fieldSub(4, fieldElement(z1))
				j++
			}
		}
	}
	return a
}

// expandA builds the public k x l matrix in NTT domain, row-major,
// keyed by rho. Implements FIPS 204 Algorithm 32 (ExpandA).
func expandA(p *ParameterSet, rho []byte) []nttElement {
	a := make([]nttElement, p.k*p.l)
	for i := 0; i < p.k; i++ {
		for j := 0; j < p.l; j++ {
			a[i*p.l+j] = rejNTTPoly(rho, byte(j), byte(i))
		}
	}
	return a
}

// expandS builds the secret vectors s1 (length l) and s2 (length k) with a
// sequential per-entry nonce. Implements FIPS 204 Algorithm 33 (ExpandS).
func expandS(p *ParameterSet, rhoPrime []byte) (s1, s2 []ringElement) {
	s1 = make([]ringElement, p.l)
	s2 = make([]ringElement, p.k)
	for i := range s1 {
		s1[i] = rejBoundedPoly(rhoPrime, p.eta, uint16(i))
	}
	for i := range s2 {
		s2[i] = rejBoundedPoly(rhoPrime, p.eta, uint16(p.l+i))
	}
	return s1, s2
}

// expandMask generates one mask polynomial with coefficients in
// (-gamma1, gamma1]. The seed is rho'' followed by the 16-bit attempt
// counter; the caller guarantees counter uniqueness per signing attempt.
// Implements FIPS 204 Algorithm 34 (ExpandMask).
func expandMask(p *ParameterSet, seed []byte) ringElement {
	width := p.zWidth()
	buf := make([]byte, n*int(width)/8)
	xofH(seed).Read(buf)

	var f ringElement
	bitUnpack(buf, &f, width)
	gamma1 := fieldElement(p.gamma1())
	for i := range f {
		f[i] = fieldSub(gamma1, f[i])
	}
	return f
}

// sampleInBall generates the challenge polynomial c with tau non-zero
// coefficients in {-1, 1}, via a Fisher-Yates shuffle driven by SHAKE256
// bits. Deterministic in the seed; the seed is public.
// Implements FIPS 204 Algorithm 29 (SampleInBall).
func sampleInBall(p *ParameterSet, seed []byte) ringElement {
	h := xofH(seed)

	var buf [rate256]byte
	h.Read(buf[:])

	// First 8 bytes encode sign bits
	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(buf[i]) << (8 * i)
	}
	offset := 8

	var c ringElement
	for i := n - p.tau; i < n; i++ {
		// Sample j uniformly from [0, i]
		var j byte
		for {
			if offset >= len(buf) {
				h.Read(buf[:])
				offset = 0
			}
			j = buf[offset]
			offset++
			if int(j) <= i {
				break
			}
		}

		// Swap c[i] and c[j], then set c[j] to ±1
		c[i] = c[j]
		if signs&1 == 0 {
			c[j] = 1
		} else {
			c[j] = q - 1 // -1 mod q
		}
		signs >>= 1
	}
	return c
}
