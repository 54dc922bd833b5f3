package services

import (
	"errors"
	"fmt"

	"github.com/gookit/validate"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrUserNotFound        = errors.New("user not found")
	ErrProblemNotFound     = errors.New("problem not found")
	ErrListNotFound        = errors.New("list not found")
	ErrListProblemNotFound = errors.New("problem not found in list")
)

// validateInput runs the gookit/validate struct tags of in and wraps the first
// failure in ErrValidation.
func validateInput(in interface{}) error {
	v := validate.Struct(in)
	if v.Validate() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, v.Errors.One())
}
