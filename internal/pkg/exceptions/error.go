package exceptions

import (
	"fmt"
	"infomed-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int          `json:"status_code"`
	Success       bool         `json:"success"`
	ClientMessage string       `json:"message"`
	Errors        []FieldError `json:"errors,omitempty"`
	DevMessage    string       `json:"dev_message,omitempty"`
	Location      Location     `json:"-"`
}

// FieldError is one itemized validation failure returned to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseError,
			Line:         0,
			FunctionName: constvars.ResponseError,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
