// Package server provides the job board HTTP API: the AI proxy gateway and the catalog endpoints.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/jobboard/internal/types"
)

// Client-facing messages. Root causes only go to the log.
const (
	msgMethodNotAllowed    = "Method Not Allowed"
	msgServerConfiguration = "Server configuration error: API key not available."
	msgInternal            = "An internal server error occurred."
	msgJobNotFound         = "Job not found"
)

// ErrMethodNotAllowed indicates the request used a method the endpoint does not accept
type ErrMethodNotAllowed struct {
	Method  string
	Allowed string
}

func (e *ErrMethodNotAllowed) Error() string {
	return fmt.Sprintf("method %s not allowed, expected %s", e.Method, e.Allowed)
}

// ErrServerConfiguration indicates the oracle credential was not configured at startup
type ErrServerConfiguration struct{}

func (e *ErrServerConfiguration) Error() string {
	return "oracle credential not configured"
}

// ErrInvalidRequestType indicates the envelope tag names no known request kind
type ErrInvalidRequestType struct {
	Type types.RequestType
}

func (e *ErrInvalidRequestType) Error() string {
	return fmt.Sprintf("invalid request type: %s", e.Type)
}

// ErrInvalidPayload indicates the payload does not match its request tag
type ErrInvalidPayload struct {
	Type  types.RequestType
	Cause error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload for request type %s: %v", e.Type, e.Cause)
}

func (e *ErrInvalidPayload) Unwrap() error {
	return e.Cause
}

// ErrJobNotFound indicates no catalog job has the requested id
type ErrJobNotFound struct {
	ID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case *ErrInvalidRequestType, *ErrInvalidPayload:
		return http.StatusBadRequest
	case *ErrJobNotFound:
		return http.StatusNotFound
	default:
		// ErrServerConfiguration and everything unexpected
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message a client may see for an error.
func PublicMessage(err error) string {
	switch e := err.(type) {
	case *ErrMethodNotAllowed:
		return msgMethodNotAllowed
	case *ErrServerConfiguration:
		return msgServerConfiguration
	case *ErrInvalidRequestType:
		return fmt.Sprintf("Invalid request type: %s", e.Type)
	case *ErrInvalidPayload:
		return fmt.Sprintf("Invalid payload for request type: %s", e.Type)
	case *ErrJobNotFound:
		return msgJobNotFound
	default:
		return msgInternal
	}
}
