package mldsa

import "golang.org/x/crypto/sha3"

// The scheme uses two domain-separated extendable-output constructions:
// H (SHAKE-256) for message representatives, commitments and secret
// expansion, and G (SHAKE-128) for public matrix expansion. Each
// derivation absorbs its whole input before the first squeeze and is
// restarted only by building a fresh instance; the separator bytes
// appended at each call site are part of the wire contract.

// xofH returns an H instance with all inputs absorbed.
func xofH(inputs ...[]byte) sha3.ShakeHash {
	h := sha3.NewShake256()
	for _, in := range inputs {
		h.Write(in)
	}
	return h
}

// xofG returns a G instance with all inputs absorbed.
func xofG(inputs ...[]byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	for _, in := range inputs {
		h.Write(in)
	}
	return h
}

// hashH squeezes outLen bytes of H over the concatenated inputs.
func hashH(outLen int, inputs ...[]byte) []byte {
	out := make([]byte, outLen)
	xofH(inputs...).Read(out)
	return out
}

// SHAKE sponge rates, used to size squeeze buffers in the samplers.
const (
	rate128 = 168
	rate256 = 136
)
