package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrMethodNotAllowed",
			err:      &ErrMethodNotAllowed{Method: http.MethodGet, Allowed: http.MethodPost},
			expected: http.StatusMethodNotAllowed,
		},
		{
			name:     "ErrServerConfiguration",
			err:      &ErrServerConfiguration{},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "ErrInvalidRequestType",
			err:      &ErrInvalidRequestType{Type: "bogus"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrInvalidPayload",
			err:      &ErrInvalidPayload{Type: "search", Cause: errors.New("missing query")},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrJobNotFound",
			err:      &ErrJobNotFound{ID: "99"},
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped typed error is internal",
			err:      fmt.Errorf("search: %w", &ErrInvalidRequestType{Type: "x"}),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Method Not Allowed", PublicMessage(&ErrMethodNotAllowed{}))
	assert.Equal(t, "Server configuration error: API key not available.", PublicMessage(&ErrServerConfiguration{}))
	assert.Equal(t, "Invalid request type: bogus", PublicMessage(&ErrInvalidRequestType{Type: "bogus"}))
	assert.Equal(t, "Invalid payload for request type: resume", PublicMessage(&ErrInvalidPayload{Type: "resume"}))
	assert.Equal(t, "Job not found", PublicMessage(&ErrJobNotFound{ID: "7"}))
	assert.Equal(t, "An internal server error occurred.", PublicMessage(errors.New("upstream quota exceeded")))
}

func TestErrInvalidPayload_Unwrap(t *testing.T) {
	cause := errors.New("bad field")
	err := &ErrInvalidPayload{Type: "application", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "application")
}
