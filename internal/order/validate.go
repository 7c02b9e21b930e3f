package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

var ErrInvalid = errors.New("invalid order")

var validate = validator.New(validator.WithRequiredStructEnabled())

var validationMessages = map[string]string{
	"required":  "is required",
	"len":       "must have the exact length of %s",
	"alphanum":  "must contain only alphanumeric characters",
	"uppercase": "must be uppercase",
	"min":       "must be greater than or equal to %s",
	"max":       "must be less than or equal to %s",
	"oneof":     "must be one of: %s",
}

// Validate checks the order against its struct tags and reports every
// failing field in one error wrapping ErrInvalid.
func Validate(o *model.Order) error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msg, ok := validationMessages[e.Tag()]
		if !ok {
			msg = "failed " + e.Tag()
		}
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, e.Param())
		}
		msgs = append(msgs, e.Namespace()+" "+msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, ", "))
}
