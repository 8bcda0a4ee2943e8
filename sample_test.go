package mldsa

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRejNTTPolyRange(t *testing.T) {
	rho := bytes.Repeat([]byte{0xA5}, 32)
	a := rejNTTPoly(rho, 1, 2)
	for i := range a {
		require.Less(t, uint32(a[i]), uint32(q))
	}
	// Deterministic in (rho, s, r); distinct positions give distinct output.
	require.Equal(t, a, rejNTTPoly(rho, 1, 2))
	require.NotEqual(t, a, rejNTTPoly(rho, 2, 1))
}

func TestRejBoundedPolyRange(t *testing.T) {
	seed := bytes.Repeat([]byte{0x3C}, 64)
	for _, eta := range []int{2, 4} {
		f := rejBoundedPoly(seed, eta, 7)
		for i := range f {
			require.LessOrEqual(t, centeredAbs(f[i]), uint32(eta), "eta %d", eta)
		}
		require.Equal(t, f, rejBoundedPoly(seed, eta, 7))
		require.NotEqual(t, f, rejBoundedPoly(seed, eta, 8))
	}
}

func TestExpandSLengthsAndRange(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 64)
	for _, p := range testParams {
		s1, s2 := expandS(p, seed)
		require.Len(t, s1, p.l)
		require.Len(t, s2, p.k)
		for _, f := range append(append([]ringElement{}, s1...), s2...) {
			for i := range f {
				require.LessOrEqual(t, centeredAbs(f[i]), uint32(p.eta))
			}
		}
		// s2 nonces continue after s1, so the vectors never share an entry.
		require.NotEqual(t, s1[0], s2[0])
	}
}

func TestExpandMaskRange(t *testing.T) {
	for _, p := range testParams {
		seed := make([]byte, 66)
		for i := range seed {
			seed[i] = byte(i)
		}
		f := expandMask(p, seed)
		for i := range f {
			require.LessOrEqual(t, centeredAbs(f[i]), p.gamma1())
		}
		seed[64]++
		require.NotEqual(t, f, expandMask(p, seed))
	}
}

func TestSampleInBall(t *testing.T) {
	for _, p := range testParams {
		seed := bytes.Repeat([]byte{0x42}, p.cTildeSize())
		c := sampleInBall(p, seed)

		weight := 0
		for i := range c {
			switch c[i] {
			case 0:
			case 1, q - 1:
				weight++
			default:
				t.Fatalf("coefficient %d out of {-1, 0, 1}: %d", i, c[i])
			}
		}
		require.Equal(t, p.tau, weight)
		require.Equal(t, c, sampleInBall(p, seed))
	}
}
