package mldsa

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var testParams = []*ParameterSet{MLDSA44, MLDSA65, MLDSA87}

func TestGenerateKey(t *testing.T) {
	for _, p := range testParams {
		t.Run(p.Name(), func(t *testing.T) {
			key, err := GenerateKey(p, rand.Reader)
			require.NoError(t, err)
			require.NotNil(t, key)
			require.Equal(t, p, key.ParameterSet())
		})
	}
}

func TestSignVerify(t *testing.T) {
	for _, p := range testParams {
		t.Run(p.Name(), func(t *testing.T) {
			key, err := GenerateKey(p, rand.Reader)
			require.NoError(t, err)

			message := []byte("hello, world!")
			sig, err := key.Sign(rand.Reader, message, nil)
			require.NoError(t, err)
			require.Len(t, sig, p.SignatureSize())

			pk := key.PublicKey()
			require.True(t, pk.Verify(sig, message, nil))
			require.False(t, pk.Verify(sig, []byte("wrong message"), nil))

			badSig := make([]byte, len(sig))
			copy(badSig, sig)
			badSig[0] ^= 0xFF
			require.False(t, pk.Verify(badSig, message, nil))

			require.False(t, pk.Verify(sig[:len(sig)-1], message, nil))
		})
	}
}

func TestSignVerifyWithContext(t *testing.T) {
	key, err := GenerateKey(MLDSA65, rand.Reader)
	require.NoError(t, err)

	message := []byte("hello, world!")
	context := []byte("test context")

	sig, err := key.Sign(rand.Reader, message, context)
	require.NoError(t, err)

	pk := key.PublicKey()
	require.True(t, pk.Verify(sig, message, context))
	require.False(t, pk.Verify(sig, message, []byte("wrong context")))
	require.False(t, pk.Verify(sig, message, nil))
}

func TestContextTooLong(t *testing.T) {
	key, err := GenerateKey(MLDSA44, rand.Reader)
	require.NoError(t, err)

	longCtx := make([]byte, 256)
	_, err = key.Sign(rand.Reader, []byte("m"), longCtx)
	require.ErrorIs(t, err, ErrContextTooLong)

	sig, err := key.Sign(rand.Reader, []byte("m"), longCtx[:255])
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(sig, []byte("m"), longCtx[:255]))
	require.False(t, key.PublicKey().Verify(sig, []byte("m"), longCtx))
}

func TestDeterministicSign(t *testing.T) {
	for _, p := range testParams {
		t.Run(p.Name(), func(t *testing.T) {
			seed := make([]byte, SeedSize)
			for i := range seed {
				seed[i] = byte(i)
			}
			key, err := NewKey(p, seed)
			require.NoError(t, err)

			message := []byte("deterministic message")
			sig1, err := key.Sign(nil, message, nil)
			require.NoError(t, err)
			sig2, err := key.Sign(nil, message, nil)
			require.NoError(t, err)
			require.Equal(t, sig1, sig2)

			require.True(t, key.PublicKey().Verify(sig1, message, nil))
		})
	}
}

func TestSignatureBitFlips(t *testing.T) {
	for _, p := range testParams {
		t.Run(p.Name(), func(t *testing.T) {
			key, err := GenerateKey(p, rand.Reader)
			require.NoError(t, err)

			message := []byte("bit flip target")
			sig, err := key.Sign(nil, message, nil)
			require.NoError(t, err)
			pk := key.PublicKey()

			// Flip single bits inside the packed z region. The result stays
			// structurally decodable (the z width has no invalid raw values)
			// but must no longer verify.
			zStart := p.cTildeSize()
			zEnd := zStart + p.l*n*int(p.zWidth())/8
			for _, pos := range []int{zStart, (zStart + zEnd) / 2, zEnd - 1} {
				bad := make([]byte, len(sig))
				copy(bad, sig)
				bad[pos] ^= 1
				require.False(t, pk.Verify(bad, message, nil), "flipped z byte %d", pos)
			}
		})
	}
}

func TestKeyRoundtrip(t *testing.T) {
	for _, p := range testParams {
		t.Run(p.Name(), func(t *testing.T) {
			key, err := GenerateKey(p, rand.Reader)
			require.NoError(t, err)

			// Seed roundtrip
			key2, err := NewKey(p, key.Bytes())
			require.NoError(t, err)
			require.Equal(t, key.PrivateKeyBytes(), key2.PrivateKeyBytes())

			// Private key roundtrip
			skBytes := key.PrivateKeyBytes()
			require.Len(t, skBytes, p.PrivateKeySize())
			sk, err := NewPrivateKey(p, skBytes)
			require.NoError(t, err)
			require.Equal(t, skBytes, sk.Bytes())

			// Public key roundtrip
			pkBytes := key.PublicKey().Bytes()
			require.Len(t, pkBytes, p.PublicKeySize())
			pk, err := NewPublicKey(p, pkBytes)
			require.NoError(t, err)
			require.Equal(t, pkBytes, pk.Bytes())

			// A decoded private key signs for the original public key.
			sig, err := sk.Sign(nil, []byte("roundtrip"), nil)
			require.NoError(t, err)
			require.True(t, pk.Verify(sig, []byte("roundtrip"), nil))
		})
	}
}

func TestInvalidSeedLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := NewKey(MLDSA44, make([]byte, size))
		require.ErrorIs(t, err, ErrInvalidSeedLength)
	}
}

func TestDeterministicKeyGen(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	key1, err := NewKey(MLDSA65, seed)
	require.NoError(t, err)
	key2, err := NewKey(MLDSA65, seed)
	require.NoError(t, err)
	require.Equal(t, key1.PrivateKeyBytes(), key2.PrivateKeyBytes())
	require.Equal(t, key1.PublicKeyBytes(), key2.PublicKeyBytes())
}

func TestPublicKeyEquality(t *testing.T) {
	key1, err := GenerateKey(MLDSA65, rand.Reader)
	require.NoError(t, err)
	key2, err := GenerateKey(MLDSA65, rand.Reader)
	require.NoError(t, err)

	require.True(t, key1.PublicKey().Equal(key1.PublicKey()))
	require.False(t, key1.PublicKey().Equal(key2.PublicKey()))
}

func TestParameterSetSizes(t *testing.T) {
	// FIPS 204 Table 2 sizes.
	require.Equal(t, 1312, MLDSA44.PublicKeySize())
	require.Equal(t, 2560, MLDSA44.PrivateKeySize())
	require.Equal(t, 2420, MLDSA44.SignatureSize())

	require.Equal(t, 1952, MLDSA65.PublicKeySize())
	require.Equal(t, 4032, MLDSA65.PrivateKeySize())
	require.Equal(t, 3309, MLDSA65.SignatureSize())

	require.Equal(t, 2592, MLDSA87.PublicKeySize())
	require.Equal(t, 4896, MLDSA87.PrivateKeySize())
	require.Equal(t, 4627, MLDSA87.SignatureSize())
}

func BenchmarkGenerateKey(b *testing.B) {
	for _, p := range testParams {
		b.Run(p.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				GenerateKey(p, rand.Reader)
			}
		})
	}
}

func BenchmarkSign(b *testing.B) {
	for _, p := range testParams {
		b.Run(p.Name(), func(b *testing.B) {
			key, _ := GenerateKey(p, rand.Reader)
			message := []byte("benchmark message")
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key.Sign(rand.Reader, message, nil)
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, p := range testParams {
		b.Run(p.Name(), func(b *testing.B) {
			key, _ := GenerateKey(p, rand.Reader)
			message := []byte("benchmark message")
			sig, _ := key.Sign(rand.Reader, message, nil)
			pk := key.PublicKey()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pk.Verify(sig, message, nil)
			}
		})
	}
}
