//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exponentHolder struct {
	P uint32
	Q uint32
	E uint32 `validate:"exponentRange"`
}

type modeHolder struct {
	Mode string `validate:"rsaMode"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("exponentRange", ExponentRangeValidation))
	require.NoError(t, validate.RegisterValidation("rsaMode", ModeValidation))
	return validate
}

func TestExponentInRange(t *testing.T) {
	assert.False(t, ExponentInRange(0, 60))
	assert.False(t, ExponentInRange(1, 60))
	assert.True(t, ExponentInRange(2, 60))
	assert.True(t, ExponentInRange(59, 60))
	assert.False(t, ExponentInRange(60, 60))
	assert.False(t, ExponentInRange(61, 60))
}

func TestExponentRangeValidation(t *testing.T) {
	validate := newValidator(t)

	tests := []struct {
		name    string
		holder  exponentHolder
		wantErr bool
	}{
		{"in range", exponentHolder{P: 7, Q: 11, E: 13}, false},
		{"exponent one", exponentHolder{P: 7, Q: 11, E: 1}, true},
		{"exponent equals totient", exponentHolder{P: 7, Q: 11, E: 60}, true},
		{"exponent above totient", exponentHolder{P: 7, Q: 11, E: 61}, true},
		{"degenerate prime", exponentHolder{P: 1, Q: 11, E: 3}, true},
		{"large totient does not wrap", exponentHolder{P: 4294967291, Q: 4294967279, E: 65537}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.holder)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestModeValidation(t *testing.T) {
	validate := newValidator(t)

	assert.NoError(t, validate.Struct(modeHolder{Mode: ModeEncrypt}))
	assert.NoError(t, validate.Struct(modeHolder{Mode: ModeDecrypt}))
	assert.Error(t, validate.Struct(modeHolder{Mode: "sign"}))
	assert.Error(t, validate.Struct(modeHolder{Mode: ""}))
}
