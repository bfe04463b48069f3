package arithmetic

// GCD returns the greatest common divisor of a and b using the iterative Euclidean
// algorithm. GCD(a, 0) is a, and GCD(0, 0) is 0.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
