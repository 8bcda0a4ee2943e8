package mldsa

// Bit-packing codec. Coefficients are laid down little-endian in a single
// bit stream, width bits each, 256 per polynomial, with no padding other
// than final byte alignment (FIPS 204 Algorithms 16/18, SimpleBitPack /
// SimpleBitUnpack). Values declared in a range [-a, b] are stored as
// b - value (Algorithms 17/19).

// bitPack packs 256 coefficients of width bits each into dst.
// dst must hold exactly n*width/8 bytes; every coefficient must be < 2^width.
func bitPack[T ~[n]fieldElement](dst []byte, f T, width uint) {
	var acc uint64
	var nbits uint
	idx := 0
	for i := range f {
		acc |= uint64(f[i]) << nbits
		nbits += width
		for nbits >= 8 {
			dst[idx] = byte(acc)
			idx++
			acc >>= 8
			nbits -= 8
		}
	}
}

// bitUnpack unpacks 256 coefficients of width bits each from b.
// b must hold at least n*width/8 bytes.
func bitUnpack[T ~[n]fieldElement](b []byte, f *T, width uint) {
	mask := uint64(1)<<width - 1
	var acc uint64
	var nbits uint
	idx := 0
	for i := range *f {
		for nbits < width {
			acc |= uint64(b[idx]) << nbits
			idx++
			nbits += 8
		}
		(*f)[i] = fieldElement(acc & mask)
		acc >>= width
		nbits -= width
	}
}

// bitPackRange packs coefficients declared in [-a, bound] by storing
// bound - c. Coefficients are held mod q; bound - c must fit in width bits.
func bitPackRange[T ~[n]fieldElement](dst []byte, f T, bound fieldElement, width uint) {
	var g T
	for i := range f {
		g[i] = fieldSub(bound, f[i])
	}
	bitPack(dst, g, width)
}

// bitUnpackRange is the inverse of bitPackRange. The raw width-bit values
// cover the declared range completely, so no validation is needed here.
func bitUnpackRange[T ~[n]fieldElement](b []byte, f *T, bound fieldElement, width uint) {
	bitUnpack(b, f, width)
	for i := range *f {
		(*f)[i] = fieldSub(bound, (*f)[i])
	}
}

// bitUnpackEta decodes a secret polynomial with coefficients declared in
// [-eta, eta]. Unlike the complete-range widths, the eta widths have
// invalid raw values; those are rejected, never clamped. The validity scan
// is branch-free over the raw values.
func bitUnpackEta(b []byte, f *ringElement, eta fieldElement, width uint) bool {
	bitUnpack(b, f, width)
	var bad uint32
	for i := range f {
		// underflows iff the raw value exceeds 2*eta
		bad |= uint32(2*eta) - uint32(f[i])
		f[i] = fieldSub(eta, f[i])
	}
	return bad>>31 == 0
}
