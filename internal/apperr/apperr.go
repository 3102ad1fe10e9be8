// Package apperr carries an HTTP status code alongside an error so service
// code can classify failures without importing gin.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// StatusCode returns the HTTP status for err, defaulting to 500 for
// anything that is not an *Error.
func StatusCode(err error) int {
	var appErr *Error

	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return http.StatusInternalServerError
}
