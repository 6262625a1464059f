package httperr

import "net/http"

// Error is an error with an associated HTTP status code. Handlers use it to
// translate service failures into responses without inspecting messages.
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

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}
