package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct checks the validate tags of s and reports every failing field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var finalErr *multierror.Error

	for _, fe := range fieldErrs {
		finalErr = multierror.Append(finalErr, fmt.Errorf("%s: failed %q validation, got %q", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
	}

	return finalErr.ErrorOrNil()
}
