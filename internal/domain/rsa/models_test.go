//go:build unit
// +build unit

package rsa

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyParametersValidation(t *testing.T) {
	tests := []struct {
		name        string
		params      KeyParameters
		expectedErr error
	}{
		{"valid textbook parameters", KeyParameters{P: 7, Q: 11, E: 13}, nil},
		{"equal primes", KeyParameters{P: 11, Q: 11, E: 7}, ErrInvalidKeyParameters},
		{"equal primes take precedence over exponent", KeyParameters{P: 11, Q: 11, E: 1}, ErrInvalidKeyParameters},
		{"p below two", KeyParameters{P: 1, Q: 11, E: 3}, ErrInvalidKeyParameters},
		{"q zero", KeyParameters{P: 7, Q: 0, E: 3}, ErrInvalidKeyParameters},
		{"exponent zero", KeyParameters{P: 7, Q: 11, E: 0}, ErrInvalidExponent},
		{"exponent one", KeyParameters{P: 7, Q: 11, E: 1}, ErrInvalidExponent},
		{"exponent equals totient", KeyParameters{P: 7, Q: 11, E: 60}, ErrInvalidExponent},
		{"exponent above totient", KeyParameters{P: 7, Q: 11, E: 1000}, ErrInvalidExponent},
		// Coprimality is the evaluator's job, so an in-range even exponent passes here.
		{"in range but not coprime", KeyParameters{P: 5, Q: 11, E: 4}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	valid := KeyParameters{P: 7, Q: 11, E: 13}

	t.Run("EncryptMode", func(t *testing.T) {
		req := Request{Params: valid, Message: 5, Mode: ModeEncrypt}
		assert.NoError(t, req.Validate())
	})

	t.Run("DecryptMode", func(t *testing.T) {
		req := Request{Params: valid, Message: 26, Mode: ModeDecrypt}
		assert.NoError(t, req.Validate())
	})

	t.Run("UnknownMode", func(t *testing.T) {
		req := Request{Params: valid, Message: 5, Mode: "sign"}
		assert.ErrorIs(t, req.Validate(), ErrMalformedInput)
	})

	t.Run("InvalidParamsPropagate", func(t *testing.T) {
		req := Request{Params: KeyParameters{P: 3, Q: 3, E: 3}, Mode: ModeEncrypt}
		assert.ErrorIs(t, req.Validate(), ErrInvalidKeyParameters)
	})
}

func TestResult(t *testing.T) {
	id := uuid.New()

	encrypted := Result{ID: id, Mode: ModeEncrypt, Value: 26}
	assert.Equal(t, LabelCiphertext, encrypted.Label())
	assert.Equal(t, "C: 26", encrypted.String())

	decrypted := Result{ID: id, Mode: ModeDecrypt, Value: 5}
	assert.Equal(t, LabelMessage, decrypted.Label())
	assert.Equal(t, "M: 5", decrypted.String())

	failed := Result{ID: id, Mode: ModeEncrypt, Err: ErrInvalidExponent}
	assert.Equal(t, "Error: invalid exponent", failed.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitMalformedInput, ExitCode(fmt.Errorf("arg %q: %w", "x", ErrMalformedInput)))
	assert.Equal(t, ExitFailure, ExitCode(ErrInvalidKeyParameters))
	assert.Equal(t, ExitFailure, ExitCode(ErrInvalidExponent))
	assert.Equal(t, ExitFailure, ExitCode(ErrArithmeticOverflow))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("unexpected")))
}
