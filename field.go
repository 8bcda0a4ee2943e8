package mldsa

// fieldElement is an integer modulo q, always in reduced form [0, q).
type fieldElement uint32

// ringElement is a polynomial with n coefficients in Z_q.
type ringElement [n]fieldElement

// nttElement is the NTT representation of a polynomial. It is a distinct
// type so that mixing standard- and NTT-domain values is a compile error.
type nttElement [n]fieldElement

// Montgomery form constants.
const (
	// qNegInv = -q^(-1) mod 2^32
	qNegInv = 4236238847
	// montR = 2^32 mod q (Montgomery R)
	montR = 4193792
	// montR2 = 2^64 mod q (Montgomery R^2)
	montR2 = 2365951
)

// fieldReduceOnce reduces a value < 2q to [0, q).
func fieldReduceOnce(a uint32) fieldElement {
	// If a >= q, subtract q
	x := a - q
	// If underflow (a < q), x has high bit set
	x += (x >> 31) * q
	return fieldElement(x)
}

// fieldAdd returns (a + b) mod q.
func fieldAdd(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) + uint32(b))
}

// fieldSub returns (a - b) mod q.
func fieldSub(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) - uint32(b) + q)
}

// fieldReduce performs Montgomery reduction: returns a * R^(-1) mod q
// where a < q * 2^32.
func fieldReduce(a uint64) fieldElement {
	t := uint32(a) * qNegInv
	return fieldReduceOnce(uint32((a + uint64(t)*q) >> 32))
}

// fieldMul returns a * b * R^(-1) mod q (Montgomery multiplication).
func fieldMul(a, b fieldElement) fieldElement {
	return fieldReduce(uint64(a) * uint64(b))
}

// centeredAbs returns |x| where x is interpreted as its centered
// representative in (-q/2, q/2]. Branch-free: the value may be secret.
func centeredAbs(a fieldElement) uint32 {
	x := uint32(a)
	// mask is all ones when x > (q-1)/2
	mask := uint32(int32(qMinus1Div2-x) >> 31)
	return (x &^ mask) | ((q - x) & mask)
}

// polyAdd adds two polynomials coefficient-wise.
func polyAdd[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

// polySub subtracts two polynomials coefficient-wise.
func polySub[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}

// polyExceeds reports whether any coefficient of f has centered absolute
// value >= bound. The scan accumulates borrow masks so that no comparison
// or branch depends on an individual coefficient; only the aggregate
// verdict is revealed.
func polyExceeds[T ~[n]fieldElement](f T, bound uint32) bool {
	var acc uint32
	for i := range f {
		// underflows, setting the high bit, iff centeredAbs >= bound
		acc |= bound - 1 - centeredAbs(f[i])
	}
	return acc>>31 != 0
}

// vectorExceeds is polyExceeds across a vector of polynomials; it is the
// infinity-norm rejection check used by Sign and Verify.
func vectorExceeds[T ~[n]fieldElement](v []T, bound uint32) bool {
	var acc uint32
	for i := range v {
		for j := range v[i] {
			acc |= bound - 1 - centeredAbs(v[i][j])
		}
	}
	return acc>>31 != 0
}

// countOnes counts the number of non-zero coefficients in a vector.
func countOnes[T ~[n]fieldElement](v []T) int {
	count := 0
	for i := range v {
		for j := range v[i] {
			x := uint32(v[i][j])
			count += int((x | -x) >> 31)
		}
	}
	return count
}
