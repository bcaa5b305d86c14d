package validators

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
)

// Register installs the custom binding rules on gin's validator:
//
//	date  - YYYY-MM-DD
//	clock - HH:MM, 24h
//	trimmed_email - an email address once surrounding whitespace is removed
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		return ok && domain.ValidDate(value)
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		return ok && domain.ValidTime(value)
	}); err != nil {
		return err
	}

	return v.RegisterValidation("trimmed_email", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		return ok && plain.Var(strings.TrimSpace(value), "required,email") == nil
	})
}

// plain checks the stock rules without re-entering the custom ones.
var plain = validator.New()
