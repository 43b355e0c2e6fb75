package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

type ErrorValidateResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStruct validates a struct by its `validate` tags, reporting
// field names from json tags. All violations are collected, not just the
// first one.
func ValidateStruct(toValidate interface{}) error {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Field:   valErr.Field(),
					Message: messageForTag(valErr),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

func messageForTag(valErr validator.FieldError) string {
	switch valErr.Tag() {
	case "required":
		return "field is missing"
	case "len":
		return fmt.Sprintf("field must be exactly %s characters", valErr.Param())
	case "min":
		return fmt.Sprintf("field must have at least %s entries", valErr.Param())
	case "gt":
		return fmt.Sprintf("field must be greater than %s", valErr.Param())
	case "datetime":
		return fmt.Sprintf("field must match the %q layout", valErr.Param())
	default:
		return fmt.Sprintf("field failed on the %q rule", valErr.Tag())
	}
}
