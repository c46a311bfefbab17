package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Create inputs, update patches,
// and imported backup rows are all checked through it before any write.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a create input or update patch against its declared
// constraints. Returns an error wrapping ErrValidation on failure so callers
// can match with errors.Is.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}
