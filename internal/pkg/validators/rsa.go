package validators

import (
	"github.com/go-playground/validator/v10"
)

// Mode values accepted by ModeValidation.
const (
	ModeEncrypt = "encrypt"
	ModeDecrypt = "decrypt"
)

// ExponentInRange reports whether e lies strictly between 1 and the totient.
// Exponents outside (1, totient) are rejected outright rather than skipping the coprimality check.
func ExponentInRange(e, totient uint64) bool {
	return e > 1 && e < totient
}

// ExponentRangeValidation validates the public exponent against the totient derived from
// the sibling P and Q fields of the parent struct.
func ExponentRangeValidation(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	p := parent.FieldByName("P").Uint()
	q := parent.FieldByName("Q").Uint()
	if p < 2 || q < 2 {
		return false
	}

	return ExponentInRange(fl.Field().Uint(), (p-1)*(q-1))
}

// ModeValidation validates the operation mode (encrypt or decrypt).
func ModeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case ModeEncrypt, ModeDecrypt:
		return true
	default:
		return false
	}
}
