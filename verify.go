package mldsa

// Verify checks a signature over message bound to the optional context
// string. Every failure mode, including a malformed signature encoding, is
// reported as false; verification failure is never an error.
// Implements FIPS 204 Algorithm 3 (ML-DSA.Verify).
func (pk *PublicKey) Verify(sig, message, context []byte) bool {
	if len(context) > 255 {
		return false
	}
	return pk.verifyInternal(sig, wrapMessage(message, context))
}

// verifyInternal verifies a signature over the already-wrapped message M'.
// Implements FIPS 204 Algorithm 8 (ML-DSA.Verify_internal).
func (pk *PublicKey) verifyInternal(sig, mPrime []byte) bool {
	p := pk.params

	cTilde, z, hints, err := sigDecode(p, sig)
	if err != nil {
		return false
	}

	// Structural bound on z, before any cryptographic computation.
	if vectorExceeds(z, p.gamma1()-p.beta()) {
		return false
	}

	mu := hashH(64, pk.tr[:], mPrime)

	c := sampleInBall(p, cTilde)
	cHat := ntt(c)

	zHat := make([]nttElement, p.l)
	for i := range zHat {
		zHat[i] = ntt(z[i])
	}

	t1Hat := make([]nttElement, p.k)
	for i := 0; i < p.k; i++ {
		var t1Scaled ringElement
		for j := 0; j < n; j++ {
			t1Scaled[j] = pk.t1[i][j] << d
		}
		t1Hat[i] = ntt(t1Scaled)
	}

	h := xofH(mu)
	w1Buf := make([]byte, n*int(p.w1Width())/8)
	var w1 ringElement
	for i := 0; i < p.k; i++ {
		var acc nttElement
		for j := 0; j < p.l; j++ {
			acc = polyAdd(acc, nttMul(pk.a[i*p.l+j], zHat[j]))
		}
		acc = polySub(acc, nttMul(cHat, t1Hat[i]))
		wApprox := invNTT(acc)

		for j := 0; j < n; j++ {
			w1[j] = useHint(hints[i][j], wApprox[j], p.gamma2)
		}
		bitPack(w1Buf, w1, p.w1Width())
		h.Write(w1Buf)
	}

	cTildeCheck := make([]byte, p.cTildeSize())
	h.Read(cTildeCheck)

	var diff byte
	for i := range cTilde {
		diff |= cTilde[i] ^ cTildeCheck[i]
	}
	return diff == 0
}
