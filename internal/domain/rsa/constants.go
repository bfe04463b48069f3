package rsa

import "github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

// Mode selects the direction of an RSA evaluation.
type Mode string

// ModeEncrypt computes c = m^e mod n. It is the default mode.
const ModeEncrypt Mode = validators.ModeEncrypt

// ModeDecrypt computes m = c^d mod n with d derived from e and the totient.
const ModeDecrypt Mode = validators.ModeDecrypt

// LabelCiphertext prefixes an encrypt result.
const LabelCiphertext = "C"

// LabelMessage prefixes a decrypt result.
const LabelMessage = "M"

// MinPrime is the smallest value accepted for p and q.
const MinPrime = 2
