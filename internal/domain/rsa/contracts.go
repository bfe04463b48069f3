package rsa

// Evaluator performs textbook RSA over 32-bit key parameters.
// Implementations validate parameters before any arithmetic and never return a
// value alongside an error.
type Evaluator interface {
	// Encrypt computes c = message^e mod n.
	Encrypt(params KeyParameters, message uint32) (uint32, error)

	// Decrypt computes m = ciphertext^d mod n, where d is the inverse of e modulo the totient.
	Decrypt(params KeyParameters, ciphertext uint32) (uint32, error)

	// PrivateExponent derives d for the given parameters.
	PrivateExponent(params KeyParameters) (uint32, error)

	// Evaluate runs a request and folds the outcome into a single Result.
	Evaluate(req Request) Result
}
