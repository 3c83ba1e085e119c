package responses

import "infomed-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    interface{}             `json:"data,omitempty"`
	Errors  []exceptions.FieldError `json:"errors,omitempty"`
}
