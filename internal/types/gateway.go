package types

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// RequestType is the discriminant of a gateway request.
type RequestType string

// Gateway request kinds.
const (
	TypeResume        RequestType = "resume"
	TypeSearch        RequestType = "search"
	TypeApplication   RequestType = "application"
	TypeJobSubmission RequestType = "job-submission"
)

// Envelope is the wire form of a gateway request.
type Envelope struct {
	Type    RequestType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Request is a decoded gateway request. The variants are *ResumeRequest,
// *SearchRequest, *Application and *JobSubmission.
type Request interface {
	Type() RequestType
	Validate() error
	Dispatch(ctx context.Context, d Dispatcher) (any, error)
}

// Dispatcher handles every request variant. Adding a variant means adding a
// method here, so every dispatcher has to handle it.
type Dispatcher interface {
	Resume(ctx context.Context, req *ResumeRequest) (*FeedbackResponse, error)
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
	Application(ctx context.Context, app *Application) (*SubmissionAck, error)
	JobSubmission(ctx context.Context, sub *JobSubmission) (*SubmissionAck, error)
}

// ResumeRequest asks for feedback on a resume against a job description.
type ResumeRequest struct {
	Resume         string `json:"resume" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// Type implements Request.
func (r *ResumeRequest) Type() RequestType { return TypeResume }

// Validate validates the ResumeRequest using the validator.
func (r *ResumeRequest) Validate() error { return validate.Struct(r) }

// Dispatch implements Request.
func (r *ResumeRequest) Dispatch(ctx context.Context, d Dispatcher) (any, error) {
	return d.Resume(ctx, r)
}

// SearchRequest asks for a natural-language query to be parsed into filters.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// Type implements Request.
func (r *SearchRequest) Type() RequestType { return TypeSearch }

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error { return validate.Struct(r) }

// Dispatch implements Request.
func (r *SearchRequest) Dispatch(ctx context.Context, d Dispatcher) (any, error) {
	return d.Search(ctx, r)
}

// FeedbackResponse is the success body for a resume request.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// SearchResponse is the success body for a search request.
type SearchResponse struct {
	ParsedQuery *ParsedQuery `json:"parsedQuery"`
}

// SubmissionAck is the success body for application and job-submission requests.
type SubmissionAck struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of every failed gateway request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UnknownRequestTypeError is returned when the envelope tag names no known kind.
type UnknownRequestTypeError struct {
	Type RequestType
}

func (e *UnknownRequestTypeError) Error() string {
	return fmt.Sprintf("invalid request type: %s", e.Type)
}

// InvalidPayloadError is returned when the payload does not match its tag.
type InvalidPayloadError struct {
	Type  RequestType
	Cause error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload for request type %s: %v", e.Type, e.Cause)
}

func (e *InvalidPayloadError) Unwrap() error {
	return e.Cause
}

// NewRequest returns an empty variant for the tag.
func NewRequest(t RequestType) (Request, error) {
	switch t {
	case TypeResume:
		return &ResumeRequest{}, nil
	case TypeSearch:
		return &SearchRequest{}, nil
	case TypeApplication:
		return &Application{}, nil
	case TypeJobSubmission:
		return &JobSubmission{}, nil
	default:
		return nil, &UnknownRequestTypeError{Type: t}
	}
}

// DecodeRequest parses an envelope and decodes its payload into the variant
// named by the tag. Envelope syntax errors are returned as-is; an unknown tag
// yields *UnknownRequestTypeError; a payload that does not decode into, or does
// not validate as, the tagged variant yields *InvalidPayloadError. Fields that
// belong to no field of the variant are rejected.
func DecodeRequest(data []byte) (Request, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse request envelope: %w", err)
	}

	req, err := NewRequest(env.Type)
	if err != nil {
		return nil, err
	}

	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return nil, &InvalidPayloadError{Type: env.Type, Cause: fmt.Errorf("payload is missing")}
	}
	dec := json.NewDecoder(bytes.NewReader(env.Payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return nil, &InvalidPayloadError{Type: env.Type, Cause: err}
	}
	if err := req.Validate(); err != nil {
		return nil, &InvalidPayloadError{Type: env.Type, Cause: err}
	}

	return req, nil
}

// EncodeRequest builds the wire envelope for a request variant.
func EncodeRequest(req Request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", req.Type(), err)
	}
	return json.Marshal(Envelope{Type: req.Type(), Payload: payload})
}
