package utils

import (
	"reflect"
	"strings"

	"campus-event-catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their json names. It adds a "theme" rule
// accepting the catalog theme identifiers.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return models.ThemeID(fl.Field().String()).Valid()
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationMessage turns the first failed rule into a user-facing sentence.
func ValidationMessage(err error) (field, message string) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "", "Validation failed"
	}
	firstError := validationErrors[0]
	field = firstError.Field()

	switch firstError.Tag() {
	case "required":
		message = field + " is required"
	case "email":
		message = "Invalid email format"
	case "min":
		if firstError.Kind() == reflect.Slice {
			message = field + " must have at least " + firstError.Param() + " item(s)"
		} else {
			message = field + " must be at least " + firstError.Param() + " characters"
		}
	case "max":
		message = field + " is too long"
	case "oneof":
		message = field + " must be one of: " + firstError.Param()
	case "theme":
		message = field + " must be one of: " + themeList()
	case "datetime":
		message = field + " must match " + firstError.Param()
	case "gte":
		message = field + " must be greater than or equal to " + firstError.Param()
	default:
		message = "Validation failed for " + field
	}
	return field, message
}

func themeList() string {
	ids := make([]string, 0, len(models.ThemeIDs))
	for _, id := range models.ThemeIDs {
		ids = append(ids, string(id))
	}
	return strings.Join(ids, ", ")
}
