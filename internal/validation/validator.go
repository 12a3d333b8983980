package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"trivia-orb/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator validates incoming request bodies.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and converts the first failure into a BadRequest error.
// missing maps a JSON field name to the message used when that field is absent.
func (v *Validator) Struct(s any, missing map[string]string) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewBadRequestError("invalid request body")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		if msg, ok := missing[fe.Field()]; ok {
			return domain.NewBadRequestError(msg)
		}
		return domain.NewBadRequestError(fmt.Sprintf("Missing %s in body", fe.Field()))
	case "max":
		return domain.NewBadRequestError(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return domain.NewBadRequestError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
