package cryptography

import (
	"errors"
	"fmt"

	rsaDomain "github.com/MGTheTrain/textbook-rsa/internal/domain/rsa"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/arithmetic"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// textbookRSAProcessor implements rsaDomain.Evaluator with unpadded RSA over uint32.
type textbookRSAProcessor struct {
	logger logger.Logger
}

// NewTextbookRSAProcessor creates and returns a new instance of textbookRSAProcessor
func NewTextbookRSAProcessor(logger logger.Logger) (rsaDomain.Evaluator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &textbookRSAProcessor{
		logger: logger,
	}, nil
}

// keyMaterial is the derived state of a validated parameter set.
type keyMaterial struct {
	e       uint32
	modulus uint32
	totient uint32
}

// derive validates params and computes n and φ(n).
// p = q is rejected before any multiplication, and coprimality is checked only
// once n and φ(n) are known to fit in 32 bits.
func (r *textbookRSAProcessor) derive(params rsaDomain.KeyParameters) (*keyMaterial, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	modulus, err := arithmetic.MulChecked(params.P, params.Q)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus p*q: %v", rsaDomain.ErrArithmeticOverflow, err)
	}
	// p-1 and q-1 are both smaller than p and q, so φ(n) < n cannot overflow once n fits.
	totient, err := arithmetic.MulChecked(params.P-1, params.Q-1)
	if err != nil {
		return nil, fmt.Errorf("%w: totient: %v", rsaDomain.ErrArithmeticOverflow, err)
	}

	if g := arithmetic.GCD(totient, params.E); g != 1 {
		return nil, fmt.Errorf("%w: gcd(%d, %d) = %d", rsaDomain.ErrInvalidExponent, totient, params.E, g)
	}

	return &keyMaterial{e: params.E, modulus: modulus, totient: totient}, nil
}

func (r *textbookRSAProcessor) privateExponent(km *keyMaterial) (uint32, error) {
	d, err := arithmetic.ModInverse(km.totient, km.e)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", rsaDomain.ErrInvalidExponent, err)
	}
	return d, nil
}

func (r *textbookRSAProcessor) checkMessage(value uint32, km *keyMaterial) {
	if value >= km.modulus {
		r.logger.Warn(fmt.Sprintf("input %d is not below modulus %d; result is reduced mod n", value, km.modulus))
	}
}

// Encrypt computes c = message^e mod n.
func (r *textbookRSAProcessor) Encrypt(params rsaDomain.KeyParameters, message uint32) (uint32, error) {
	km, err := r.derive(params)
	if err != nil {
		return 0, err
	}
	r.checkMessage(message, km)

	c := arithmetic.ModPow(message, km.e, km.modulus)
	r.logger.Debug(fmt.Sprintf("encrypted with n=%d e=%d", km.modulus, km.e))
	return c, nil
}

// Decrypt computes m = ciphertext^d mod n. d is derived on demand and never retained.
func (r *textbookRSAProcessor) Decrypt(params rsaDomain.KeyParameters, ciphertext uint32) (uint32, error) {
	km, err := r.derive(params)
	if err != nil {
		return 0, err
	}
	r.checkMessage(ciphertext, km)

	d, err := r.privateExponent(km)
	if err != nil {
		return 0, err
	}

	m := arithmetic.ModPow(ciphertext, d, km.modulus)
	r.logger.Debug(fmt.Sprintf("decrypted with n=%d", km.modulus))
	return m, nil
}

// PrivateExponent returns d = e^-1 mod φ(n).
func (r *textbookRSAProcessor) PrivateExponent(params rsaDomain.KeyParameters) (uint32, error) {
	km, err := r.derive(params)
	if err != nil {
		return 0, err
	}
	return r.privateExponent(km)
}

// Evaluate validates the request, runs the selected mode and returns exactly one of
// a value or an error inside the Result.
func (r *textbookRSAProcessor) Evaluate(req rsaDomain.Request) rsaDomain.Result {
	if req.Mode == "" {
		req.Mode = rsaDomain.ModeEncrypt
	}
	result := rsaDomain.Result{ID: uuid.New(), Mode: req.Mode}

	if err := req.Validate(); err != nil {
		result.Err = err
		r.logger.Info(fmt.Sprintf("evaluation %s rejected: %v", result.ID, err))
		return result
	}

	var err error
	switch req.Mode {
	case rsaDomain.ModeDecrypt:
		result.Value, err = r.Decrypt(req.Params, req.Message)
	default:
		result.Value, err = r.Encrypt(req.Params, req.Message)
	}
	if err != nil {
		result.Value = 0
		result.Err = err
		r.logger.Info(fmt.Sprintf("evaluation %s failed: %v", result.ID, err))
		return result
	}

	r.logger.Info(fmt.Sprintf("evaluation %s succeeded (%s)", result.ID, req.Mode))
	return result
}
