package arithmetic

import "math/bits"

// ModPow computes base^exponent mod modulus using left-to-right square-and-multiply.
// Intermediate products are taken in 64 bits, so any pair of residues below a 32-bit
// modulus multiplies without overflow.
//
// A zero modulus is a caller bug; ModPow panics instead of dividing by zero.
func ModPow(base, exponent, modulus uint32) uint32 {
	if modulus == 0 {
		panic("arithmetic: ModPow called with zero modulus")
	}

	m := uint64(modulus)
	b := uint64(base) % m
	d := uint64(1) % m

	for i := bits.Len32(exponent) - 1; i >= 0; i-- {
		d = d * d % m
		if (exponent>>uint(i))&1 == 1 {
			d = d * b % m
		}
	}

	return uint32(d)
}
