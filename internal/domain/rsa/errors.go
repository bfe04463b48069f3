package rsa

import "errors"

// ErrMalformedInput indicates a missing or non-decimal argument.
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidKeyParameters indicates p and q are equal or too small to form a modulus.
var ErrInvalidKeyParameters = errors.New("invalid key parameters")

// ErrInvalidExponent indicates e is out of range, not coprime to the totient or not invertible.
var ErrInvalidExponent = errors.New("invalid exponent")

// ErrArithmeticOverflow indicates a product that does not fit the 32-bit working range.
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// Process exit codes chosen by ExitCode.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitMalformedInput = 2
)

// ExitCode maps an evaluation error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	default:
		return ExitFailure
	}
}
