package model

import (
	"fmt"
	"net/http"
)

const (
	ErrorCodeBadRequest          = "BAD_REQUEST"
	ErrorCodeNotFound            = "NOT_FOUND"
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeUnexpected          = "UNEXPECTED_ERROR"

	MsgInternalServerError = "An internal server error occurred."
	MsgUnexpectedError     = "An unexpected error occurred."
)

// APIError is an error that is rendered to the client as-is with its status code.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode"`
	Details    any    `json:"details,omitempty"`
}

type APIErrorOption func(*APIError)

func WithDetails(details any) APIErrorOption {
	return func(e *APIError) {
		e.Details = details
	}
}

func newAPIError(code int, msg, errCode string, options ...APIErrorOption) *APIError {
	e := &APIError{
		StatusCode: code,
		Message:    msg,
		ErrorCode:  errCode,
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func NewBadRequestError(msg string, options ...APIErrorOption) *APIError {
	if msg == "" {
		msg = "Bad request"
	}
	return newAPIError(http.StatusBadRequest, msg, ErrorCodeBadRequest, options...)
}

func NewNotFoundError(msg string, options ...APIErrorOption) *APIError {
	if msg == "" {
		msg = "Resource not found"
	}
	return newAPIError(http.StatusNotFound, msg, ErrorCodeNotFound, options...)
}

func NewInternalServerError(msg string, options ...APIErrorOption) *APIError {
	if msg == "" {
		msg = "Internal server error"
	}
	return newAPIError(http.StatusInternalServerError, msg, ErrorCodeInternalServerError, options...)
}

// NewUnexpectedError is used for failures that are not an APIError.
func NewUnexpectedError(options ...APIErrorOption) *APIError {
	return newAPIError(http.StatusInternalServerError, MsgUnexpectedError, ErrorCodeUnexpected, options...)
}

func (x *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", x.StatusCode, x.ErrorCode, x.Message)
}

// Public returns the error as it may be shown to a client. Details of server side
// errors are kept out of the response.
func (x *APIError) Public() *APIError {
	resp := *x
	if resp.StatusCode >= http.StatusInternalServerError {
		resp.Details = nil
	}
	return &resp
}
