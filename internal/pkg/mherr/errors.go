package mherr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrActivityNotFound is returned when no activity exists under the requested name.
	ErrActivityNotFound = New(fiber.StatusNotFound, CodeNotFound, "Activity not found")

	// ErrConflict is returned when a roster mutation contradicts the current
	// roster state, e.g. signing up twice or unregistering a stranger.
	ErrConflict = New(fiber.StatusBadRequest, CodeConflict, "request conflicts with the current roster state")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

// SchoolError is the canonical API error. Detail is the human-readable wire
// message; ErrorCode never leaves the process except through logs and metrics.
type SchoolError struct {
	StatusCode int    `example:"404"`
	ErrorCode  string `example:"NOT_FOUND"`
	Detail     string `example:"Activity not found"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, detail string) *SchoolError {
	return &SchoolError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Detail:     detail,
	}
}

func (e SchoolError) Msg(format string, parts ...interface{}) *SchoolError {
	e.Detail = fmt.Sprintf(format, parts...)
	return &e
}

func (e SchoolError) WithExtras(extras Extras) *SchoolError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *SchoolError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *SchoolError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Detail)
}
