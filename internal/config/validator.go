package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Tag and attribute names as the sanitizer accepts them: lowercase,
	// optionally hyphenated (custom elements included).
	htmlTagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("html_tag", func(fl validator.FieldLevel) bool {
			return htmlTagPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the settings tree.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return chatmatcherrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return chatmatcherrors.NewValidationError(field, msg, err)
	}

	return chatmatcherrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
