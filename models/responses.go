package models

import "net/http"

// Response is the uniform JSON envelope returned by every API endpoint.
//
// Code is an application-level result code that intentionally does not
// always match the HTTP status line: an unauthenticated request is answered
// with HTTP 401 but Code 400, and a forbidden one with HTTP 403 but
// Code 4003. Clients key off the embedded code, so the pairing is part of
// the external contract and must not be "fixed".
type Response struct {
	// Success reports whether the request was handled successfully.
	Success bool `json:"success"`

	// Code is the application-level result code.
	Code int `json:"code"`

	// Message is an optional human-readable description, set on failures.
	Message string `json:"message,omitempty"`

	// Data is the endpoint-specific payload, omitted on failures.
	Data any `json:"data,omitempty"`
}

// Application-level result codes carried in the response envelope.
const (
	CodeSuccess         = http.StatusOK
	CodeUnauthenticated = 400
	CodeForbidden       = 4003
)

// OK builds a success envelope wrapping the given payload.
func OK(data any) Response {
	return Response{
		Success: true,
		Code:    CodeSuccess,
		Data:    data,
	}
}

// Fail builds a failure envelope with the given application code and message.
// The envelope shape is identical for every failure so that error responses
// never leak whether the target resource exists.
func Fail(code int, message string) Response {
	return Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}
