// Package client calls the job board gateway. Resume feedback and search parsing
// are advisory and degrade to fallbacks. Submissions report failure to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/jobboard/internal/search"
	"github.com/jonathan/jobboard/internal/types"
)

// FeedbackFallback is shown in place of resume feedback when the gateway call fails.
const FeedbackFallback = "Sorry, I encountered an error while analyzing your documents. Please try again later."

const (
	defaultBaseURL = "http://localhost:8080"
	gatewayPath    = "/api/gemini"
	defaultTimeout = 90 * time.Second
	maxErrorBody   = 64 << 10
)

// Client talks to the gateway endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ search.QueryParser = (*Client)(nil)

// New creates a client for the gateway at baseURL. A nil httpClient gets a default with a timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// APIError is a non-2xx gateway response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ResumeFeedback returns the oracle's feedback on resume for jobDescription.
// It never fails: any error yields FeedbackFallback.
func (c *Client) ResumeFeedback(ctx context.Context, resume, jobDescription string) string {
	var resp types.FeedbackResponse
	err := c.call(ctx, &types.ResumeRequest{Resume: resume, JobDescription: jobDescription}, &resp)
	if err != nil {
		log.Printf("[client] resume feedback failed: %v", err)
		return FeedbackFallback
	}
	if resp.Feedback == "" {
		log.Printf("[client] resume feedback response had no feedback")
		return FeedbackFallback
	}
	return resp.Feedback
}

// ParseSearchQuery asks the gateway to split query into keywords and location.
// On any failure the whole query becomes the keyword term.
func (c *Client) ParseSearchQuery(ctx context.Context, query string) types.ParsedQuery {
	fallback := types.ParsedQuery{Keywords: query, Location: ""}

	var resp types.SearchResponse
	if err := c.call(ctx, &types.SearchRequest{Query: query}, &resp); err != nil {
		log.Printf("[client] search parse failed, using raw query: %v", err)
		return fallback
	}
	if resp.ParsedQuery == nil {
		log.Printf("[client] search response had no parsedQuery, using raw query")
		return fallback
	}
	return *resp.ParsedQuery
}

// SubmitApplication sends a job application.
func (c *Client) SubmitApplication(ctx context.Context, app *types.Application) (*types.SubmissionAck, error) {
	return c.submit(ctx, app)
}

// SubmitJobPosting sends a job posting for approval.
func (c *Client) SubmitJobPosting(ctx context.Context, sub *types.JobSubmission) (*types.SubmissionAck, error) {
	return c.submit(ctx, sub)
}

func (c *Client) submit(ctx context.Context, req types.Request) (*types.SubmissionAck, error) {
	var ack types.SubmissionAck
	if err := c.call(ctx, req, &ack); err != nil {
		return nil, err
	}
	if !ack.Success {
		return nil, fmt.Errorf("%s submission was not accepted", req.Type())
	}
	return &ack, nil
}

// call posts req in a gateway envelope and decodes a 2xx body into out.
func (c *Client) call(ctx context.Context, req types.Request, out any) error {
	body, err := types.EncodeRequest(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+gatewayPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.Type(), err)
	}
	return nil
}

// newAPIError prefers the server's message, then its error, then the status.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var body types.ErrorResponse
	if json.Unmarshal(data, &body) != nil {
		return apiErr
	}
	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case body.Error != "":
		apiErr.Message = body.Error
	}
	return apiErr
}
