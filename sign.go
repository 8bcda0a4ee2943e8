package mldsa

import "io"

// maxSignAttempts bounds the rejection-sampling retry loop. The expected
// attempt count is below 8 for every parameter set, so reaching the bound
// indicates a defect rather than bad luck; the loop reports ErrRetryLimit
// instead of looping forever.
const maxSignAttempts = 1024

// Sign creates a signature over message bound to the optional context
// string (at most 255 bytes). A nil rand selects the standard's
// deterministic variant; otherwise 32 bytes of fresh randomness are read
// for the hedged variant. Implements FIPS 204 Algorithm 2 (ML-DSA.Sign).
func (sk *PrivateKey) Sign(rand io.Reader, message, context []byte) ([]byte, error) {
	if len(context) > 255 {
		return nil, ErrContextTooLong
	}

	var rnd [32]byte
	if rand != nil {
		if _, err := io.ReadFull(rand, rnd[:]); err != nil {
			return nil, err
		}
	}

	return sk.signInternal(rnd[:], wrapMessage(message, context))
}

// wrapMessage builds M' = 0 || len(ctx) || ctx || msg, the domain-separated
// message representative input for pure (non-pre-hashed) signing.
func wrapMessage(message, context []byte) []byte {
	mPrime := make([]byte, 2+len(context)+len(message))
	mPrime[0] = 0
	mPrime[1] = byte(len(context))
	copy(mPrime[2:], context)
	copy(mPrime[2+len(context):], message)
	return mPrime
}

// signInternal signs the already-wrapped message M' with the supplied
// 32 bytes of randomness (all zero for deterministic signing).
// Implements FIPS 204 Algorithm 7 (ML-DSA.Sign_internal).
//
// Every rejected attempt performs the same sequence of operations as an
// accepted one up to its rejection point, and each norm check reveals only
// its aggregate verdict; the rejection decisions themselves are public.
func (sk *PrivateKey) signInternal(rnd, mPrime []byte) ([]byte, error) {
	p := sk.params

	mu := hashH(64, sk.tr[:], mPrime)
	rhoPrime := hashH(64, sk.key[:], rnd, mu)

	s1Hat := make([]nttElement, p.l)
	for i := range s1Hat {
		s1Hat[i] = ntt(sk.s1[i])
	}
	s2Hat := make([]nttElement, p.k)
	t0Hat := make([]nttElement, p.k)
	for i := 0; i < p.k; i++ {
		s2Hat[i] = ntt(sk.s2[i])
		t0Hat[i] = ntt(sk.t0[i])
	}

	gamma1 := p.gamma1()
	beta := p.beta()

	maskSeed := make([]byte, 66)
	copy(maskSeed, rhoPrime)

	y := make([]ringElement, p.l)
	yHat := make([]nttElement, p.l)
	w := make([]ringElement, p.k)
	w1 := make([]ringElement, p.k)
	z := make([]ringElement, p.l)
	wSubCS2 := make([]ringElement, p.k)
	r0 := make([]ringElement, p.k)
	ct0 := make([]ringElement, p.k)
	hints := make([]ringElement, p.k)

	kappa := 0
	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		for i := 0; i < p.l; i++ {
			maskSeed[64] = byte(kappa + i)
			maskSeed[65] = byte((kappa + i) >> 8)
			y[i] = expandMask(p, maskSeed)
		}
		kappa += p.l

		for i := range y {
			yHat[i] = ntt(y[i])
		}

		for i := 0; i < p.k; i++ {
			var acc nttElement
			for j := 0; j < p.l; j++ {
				acc = polyAdd(acc, nttMul(sk.a[i*p.l+j], yHat[j]))
			}
			w[i] = invNTT(acc)

			for j := 0; j < n; j++ {
				w1[i][j] = fieldElement(highBits(w[i][j], p.gamma2))
			}
		}

		h := xofH(mu)
		w1Buf := make([]byte, n*int(p.w1Width())/8)
		for i := range w1 {
			bitPack(w1Buf, w1[i], p.w1Width())
			h.Write(w1Buf)
		}
		cTilde := make([]byte, p.cTildeSize())
		h.Read(cTilde)

		c := sampleInBall(p, cTilde)
		cHat := ntt(c)

		for i := 0; i < p.l; i++ {
			cs1 := invNTT(nttMul(cHat, s1Hat[i]))
			z[i] = polyAdd(y[i], cs1)
		}
		if vectorExceeds(z, gamma1-beta) {
			continue
		}

		for i := 0; i < p.k; i++ {
			cs2 := invNTT(nttMul(cHat, s2Hat[i]))
			wSubCS2[i] = polySub(w[i], cs2)
			for j := 0; j < n; j++ {
				r0[i][j] = lowBits(wSubCS2[i][j], p.gamma2)
			}
		}
		if vectorExceeds(r0, p.gamma2-beta) {
			continue
		}

		for i := 0; i < p.k; i++ {
			ct0[i] = invNTT(nttMul(cHat, t0Hat[i]))
		}
		if vectorExceeds(ct0, p.gamma2) {
			continue
		}

		for i := 0; i < p.k; i++ {
			for j := 0; j < n; j++ {
				hints[i][j] = makeHint(ct0[i][j], wSubCS2[i][j], p.gamma2)
			}
		}
		if countOnes(hints) > p.omega {
			continue
		}

		return sigEncode(p, cTilde, z, hints), nil
	}

	return nil, ErrRetryLimit
}
