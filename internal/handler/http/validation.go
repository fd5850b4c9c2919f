package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poiioq/5315-project/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their wire names, not their Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateStruct evaluates the validate tags of s and returns one entry per
// failing field. The full set of violations is always returned, not just the
// first.
func validateStruct(s any) []models.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []models.FieldError{{Field: "body", Message: "invalid request body"}}
	}

	fieldErrors := make([]models.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   e.Field(),
			Message: messageForFieldError(e),
		})
	}

	return fieldErrors
}

// messageForFieldError renders a single failed constraint as a readable
// message.
func messageForFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// validatePositiveInt parses a required positive integer query parameter.
// A nil FieldError means value is well-formed and parsed is usable.
func validatePositiveInt(field, value string) (parsed int64, fieldError *models.FieldError) {
	if value == "" {
		return 0, &models.FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &models.FieldError{Field: field, Message: fmt.Sprintf("%s must be numeric", field)}
	}
	if n < 1 {
		return 0, &models.FieldError{Field: field, Message: fmt.Sprintf("%s must be positive", field)}
	}

	return n, nil
}

// validateObjectID checks that the URL id parameter has the storage layer's
// native identifier shape (24-character hex string). Malformed ids are
// rejected here and never reach storage.
func validateObjectID(id string) *models.FieldError {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return &models.FieldError{Field: "id", Message: "id must be a valid document id"}
	}
	return nil
}
