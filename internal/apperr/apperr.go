// Package apperr is the error vocabulary shared by the store and the HTTP
// boundary. Every failure a client can act on is one of these codes; anything
// else surfaces as internal.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeValidation      Code = "validation_error"
	CodeUnauthenticated Code = "unauthenticated"
	CodeForbidden       Code = "forbidden"
	CodeNotFound        Code = "not_found"
	CodeConflict        Code = "conflict"
	CodeInternal        Code = "internal"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func Validation(msg string) *Error      { return &Error{Code: CodeValidation, Message: msg} }
func Unauthenticated(msg string) *Error { return &Error{Code: CodeUnauthenticated, Message: msg} }
func Forbidden(msg string) *Error       { return &Error{Code: CodeForbidden, Message: msg} }
func NotFound(msg string) *Error        { return &Error{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *Error        { return &Error{Code: CodeConflict, Message: msg} }
func Internal(msg string) *Error        { return &Error{Code: CodeInternal, Message: msg} }

// From unwraps err into an *Error, folding anything unrecognized (storage
// failures included) into internal without leaking detail to the client.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal error")
}

func HTTPStatus(c Code) int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
