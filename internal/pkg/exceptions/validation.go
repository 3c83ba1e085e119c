package exceptions

import (
	"infomed-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors turns validator errors into the itemized
// field/message list carried on the response envelope. Nested fields keep
// their namespace below the request struct, so "questoes[0].descricao"
// reads the way the client sent it.
func FormatAllValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: constvars.ResponseError, Message: constvars.ErrDevInvalidInput}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		tag := fieldErr.Tag()
		customMessage, found := constvars.CustomValidationErrorMessages[tag]
		if !found {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
			}
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldNamespace(fieldErr),
			Message: customMessage,
		})
	}
	return fieldErrors
}

func FormatFirstValidationError(err error) string {
	fieldErrors := FormatAllValidationErrors(err)
	if len(fieldErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return fieldErrors[0].Field + " " + fieldErrors[0].Message
}

func fieldNamespace(fieldErr validator.FieldError) string {
	namespace := strings.ToLower(fieldErr.Namespace())
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return strings.ToLower(fieldErr.Field())
}
