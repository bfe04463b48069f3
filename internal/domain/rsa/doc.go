// Package rsa defines the domain model for textbook (unpadded) RSA evaluation:
// key parameters, evaluation requests and results, the error kinds a caller can observe,
// and the Evaluator contract implemented by the infrastructure layer.
package rsa
