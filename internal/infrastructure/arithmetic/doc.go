// Package arithmetic provides the modular arithmetic primitives behind textbook RSA:
// square-and-multiply exponentiation, the Euclidean GCD and the extended Euclidean
// modular inverse, all over 32-bit unsigned operands.
//
// Every multiplication is either widened to 64 bits before reduction or checked for
// overflow. Nothing in this package wraps silently.
package arithmetic
