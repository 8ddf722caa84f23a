// Package pkg holds the error envelope shared by every HTTP handler.
package pkg

import "fmt"

// AppError carries what a handler needs to answer a failed request. Code is a
// stable identifier for logs; clients only see Message (and Fields).
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Fields     map[string]string
}

// HTTPError is the JSON body of every error response.
type HTTPError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports field → message failures; message is usually
// the first failing field's message.
func NewValidationError(message string, fields map[string]string, status int) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, HTTPStatus: status, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Fields: e.Fields}
}
