package rsa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// KeyParameters holds the raw inputs from which the modulus and totient are derived.
// Primality of P and Q is an unchecked precondition.
type KeyParameters struct {
	P uint32 `validate:"gte=2,nefield=Q"`
	Q uint32 `validate:"gte=2"`
	E uint32 `validate:"exponentRange"`
}

// Validate checks the key parameters. Problems with P or Q are reported as
// ErrInvalidKeyParameters and take precedence over problems with E, which are
// reported as ErrInvalidExponent. Coprimality of E is checked by the evaluator.
func (k *KeyParameters) Validate() error {
	fields, err := validateStruct(k)
	if err != nil {
		return err
	}

	var keyFields, exponentFields []fieldError
	for _, f := range fields {
		switch f.name {
		case "E":
			exponentFields = append(exponentFields, f)
		default:
			keyFields = append(keyFields, f)
		}
	}

	if len(keyFields) > 0 {
		return fmt.Errorf("%w: p=%d q=%d (%s)", ErrInvalidKeyParameters, k.P, k.Q, joinFields(keyFields))
	}
	if len(exponentFields) > 0 {
		return fmt.Errorf("%w: e=%d must satisfy 1 < e < (p-1)(q-1) (%s)", ErrInvalidExponent, k.E, joinFields(exponentFields))
	}

	return nil
}

// Request is a single evaluation: the key parameters, the input integer and the mode.
type Request struct {
	Params  KeyParameters
	Message uint32
	Mode    Mode `validate:"rsaMode"`
}

// Validate checks the mode and then the key parameters.
func (r *Request) Validate() error {
	fields, err := validateStruct(r)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if f.name == "Mode" {
			return fmt.Errorf("%w: unsupported mode %q", ErrMalformedInput, r.Mode)
		}
	}

	return r.Params.Validate()
}

// Result carries either the computed integer or the error that stopped the evaluation.
type Result struct {
	ID    uuid.UUID
	Mode  Mode
	Value uint32
	Err   error
}

// Label returns the output prefix for the result's mode.
func (r Result) Label() string {
	if r.Mode == ModeDecrypt {
		return LabelMessage
	}
	return LabelCiphertext
}

// String renders the result the way the CLI prints it, e.g. "C: 26".
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Error: %v", r.Err)
	}
	return fmt.Sprintf("%s: %d", r.Label(), r.Value)
}

type fieldError struct {
	name string
	tag  string
}

func (f fieldError) String() string {
	return fmt.Sprintf("Field: %s, Tag: %s", f.name, f.tag)
}

func validateStruct(s interface{}) ([]fieldError, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("exponentRange", validators.ExponentRangeValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("rsaMode", validators.ModeValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	fields := make([]fieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldError{name: fieldErr.Field(), tag: fieldErr.Tag()})
	}
	return fields, nil
}

func joinFields(fields []fieldError) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, "; ")
}
