package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with themekit's custom tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := widget.ParseTheme(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks every field of cfg.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return themeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return themeerrors.NewValidationError("config", err.Error(), err)
	}

	fe := ves[0]
	field := fe.Field()
	switch fe.Tag() {
	case "theme":
		return themeerrors.NewValidationError(field, fmt.Sprintf("%q must be light or dark", fe.Value()), err)
	case "oneof":
		return themeerrors.NewValidationError(field, fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param()), err)
	default:
		return themeerrors.NewValidationError(field, fmt.Sprintf("failed validation for tag '%s'", fe.Tag()), err)
	}
}
