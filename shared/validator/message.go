package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// message renders the first field error whose tag the request DTOs use.
// Other tags fall back to the validator's own text.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrs {
		switch fieldErr.Tag() {
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			return fmt.Sprintf("%s must be one of %s", fieldErr.Field(), fieldErr.Param())
		}
	}

	return fieldErrs.Error()
}
