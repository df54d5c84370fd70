// Package types provides type definitions for structured data used throughout the wellness engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InvalidInputError reports input that cannot be scored: a non-numeric value
// where a number is required, or a negative body measurement.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Message)
	}
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Message)
}

// IsInvalidInput reports whether err is or wraps an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so errors line up with the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate validates the UserProfile.
func (p *UserProfile) Validate() error {
	return toInvalidInput(validate.Struct(p))
}

// Validate validates the NutritionRequest.
func (r *NutritionRequest) Validate() error {
	return toInvalidInput(validate.Struct(r))
}

// Validate validates the PredictRequest.
func (r *PredictRequest) Validate() error {
	return r.UserProfile.Validate()
}

func toInvalidInput(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	msg := fmt.Sprintf("failed %q check", fe.Tag())
	if fe.Tag() == "gte" && fe.Param() == "0" {
		msg = "must not be negative"
	}
	return &InvalidInputError{Field: fe.Field(), Message: msg}
}

// DecodeJSON decodes a JSON document into v. Type mismatches such as a string
// where a number is expected are reported as InvalidInputError.
func DecodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return &InvalidInputError{
				Field:   field,
				Message: fmt.Sprintf("must be of type %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
