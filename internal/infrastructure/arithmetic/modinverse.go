package arithmetic

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrNotInvertible is returned when a value has no multiplicative inverse for a modulus.
var ErrNotInvertible = errors.New("value is not invertible")

// ErrOverflow is returned when a product does not fit in 32 bits.
var ErrOverflow = errors.New("32-bit arithmetic overflow")

// bezoutTriple tracks one row of the extended Euclidean tableau.
// The coefficients go negative, so the state is signed and twice as wide as the inputs.
type bezoutTriple struct {
	c1, c2, r int64
}

func (t bezoutTriple) minus(q int64, o bezoutTriple) bezoutTriple {
	return bezoutTriple{
		c1: t.c1 - q*o.c1,
		c2: t.c2 - q*o.c2,
		r:  t.r - q*o.r,
	}
}

// ModInverse returns x in [0, modulus) such that value*x ≡ 1 (mod modulus).
// It returns ErrNotInvertible when value and modulus share a factor, or when
// modulus is smaller than 2.
func ModInverse(modulus, value uint32) (uint32, error) {
	if modulus < 2 {
		return 0, fmt.Errorf("modulus %d: %w", modulus, ErrNotInvertible)
	}

	a := bezoutTriple{c1: 1, c2: 0, r: int64(modulus)}
	b := bezoutTriple{c1: 0, c2: 1, r: int64(value)}

	for {
		switch b.r {
		case 0:
			return 0, fmt.Errorf("%d mod %d: %w", value, modulus, ErrNotInvertible)
		case 1:
			m := int64(modulus)
			x := b.c2 % m
			if x < 0 {
				x += m
			}
			return uint32(x), nil
		}

		q := a.r / b.r
		a, b = b, a.minus(q, b)
	}
}

// MulChecked returns a*b, or ErrOverflow when the product needs more than 32 bits.
func MulChecked(a, b uint32) (uint32, error) {
	hi, lo := bits.Mul32(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return lo, nil
}
