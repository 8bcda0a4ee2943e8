package mldsa

// power2Round decomposes r into (r1, r0) such that r = r1 * 2^d + r0 mod q,
// with r0 in (-2^(d-1), 2^(d-1)]. r0 is returned mod q.
// Implements FIPS 204 Algorithm 35.
func power2Round(r fieldElement) (r1, r0 fieldElement) {
	const half = 1 << (d - 1)
	r1 = (r + half - 1) >> d
	r0 = fieldReduceOnce(uint32(r) - uint32(r1)<<d + q)
	return r1, r0
}

// highBits extracts the high-order bits of r under decomposition by
// 2*gamma2, forcing the bucket to 0 at the wraparound near q-1. Branch-free
// in r. Implements FIPS 204 Algorithm 37 (HighBits).
func highBits(r fieldElement, gamma2 uint32) uint32 {
	r1 := int32((r + 127) >> 7)

	if gamma2 == gamma2QMinus1Div32 {
		// gamma2 = (q-1)/32 = 261888, 16 buckets
		r1 = (r1*1025 + (1 << 21)) >> 22
		return uint32(r1) & 15
	}
	// gamma2 = (q-1)/88 = 95232, 44 buckets
	r1 = (r1*11275 + (1 << 23)) >> 24
	r1 ^= ((43 - r1) >> 31) & r1
	return uint32(r1)
}

// decompose splits r into (r1, r0) with r = r1 * 2*gamma2 + r0 mod q and
// r0 centered in (-gamma2, gamma2]. Implements FIPS 204 Algorithm 36.
func decompose(r fieldElement, gamma2 uint32) (r1 uint32, r0 int32) {
	r1 = highBits(r, gamma2)
	r0 = int32(r) - int32(r1)*int32(gamma2)*2
	// Center r0
	r0 -= ((int32(qMinus1Div2) - r0) >> 31) & q
	return r1, r0
}

// lowBits returns the centered low-order part of the decomposition, mod q.
func lowBits(r fieldElement, gamma2 uint32) fieldElement {
	_, r0 := decompose(r, gamma2)
	return fieldReduceOnce(uint32(r0 + q))
}

// makeHint computes the carry bit for one coefficient: 1 when adding the
// correction z moves r across a decomposition boundary. Branch-free: both
// inputs derive from secret values during signing.
// Implements FIPS 204 Algorithm 39.
func makeHint(z, r fieldElement, gamma2 uint32) fieldElement {
	diff := highBits(fieldAdd(r, z), gamma2) ^ highBits(r, gamma2)
	return fieldElement((diff | -diff) >> 31)
}

// useHint applies a hint bit to recover the correct high bits of r without
// the low-order correction. Operates on public data only.
// Implements FIPS 204 Algorithm 40.
func useHint(hint, r fieldElement, gamma2 uint32) fieldElement {
	r1, r0 := decompose(r, gamma2)
	if hint == 0 {
		return fieldElement(r1)
	}

	if gamma2 == gamma2QMinus1Div32 {
		// m = 16
		if r0 > 0 {
			return fieldElement((r1 + 1) & 15)
		}
		return fieldElement((r1 - 1) & 15)
	}
	// m = 44
	if r0 > 0 {
		if r1 == 43 {
			return 0
		}
		return fieldElement(r1 + 1)
	}
	if r1 == 0 {
		return 43
	}
	return fieldElement(r1 - 1)
}
