package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/jobboard/internal/llm"
	"github.com/jonathan/jobboard/internal/prompts"
	"github.com/jonathan/jobboard/internal/schemas"
	"github.com/jonathan/jobboard/internal/sink"
	"github.com/jonathan/jobboard/internal/types"
)

// jobSubmissionMessage confirms a job posting was queued for review.
const jobSubmissionMessage = "Job submission received and is pending approval."

// searchQuerySchema constrains the oracle's output for search parsing.
var searchQuerySchema = &llm.Schema{
	Type: llm.TypeObject,
	Properties: map[string]*llm.Schema{
		"keywords": {Type: llm.TypeString, Description: "Job title or keywords."},
		"location": {Type: llm.TypeString, Description: "City, state, or 'Remote'."},
	},
	Required: []string{"keywords", "location"},
}

// gateway dispatches decoded requests. It holds no per-request state.
type gateway struct {
	oracle        llm.Client
	sink          sink.Sink
	oracleTimeout time.Duration
	ackDelay      time.Duration
}

var _ types.Dispatcher = (*gateway)(nil)

// Resume asks the oracle for free-text feedback on a resume.
func (g *gateway) Resume(ctx context.Context, req *types.ResumeRequest) (*types.FeedbackResponse, error) {
	prompt := prompts.Format(prompts.MustGet(prompts.GatewayFile, prompts.ResumeFeedback), map[string]string{
		"JobDescription": req.JobDescription,
		"Resume":         req.Resume,
	})

	ctx, cancel := g.withOracleTimeout(ctx)
	defer cancel()

	text, err := g.oracle.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume feedback: %w", err)
	}
	return &types.FeedbackResponse{Feedback: text}, nil
}

// Search asks the oracle for structured filters and checks them against the schema.
func (g *gateway) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	prompt := prompts.Format(prompts.MustGet(prompts.GatewayFile, prompts.SearchParse), map[string]string{
		"Query": req.Query,
	})

	ctx, cancel := g.withOracleTimeout(ctx)
	defer cancel()

	text, err := g.oracle.GenerateJSON(ctx, prompt, searchQuerySchema, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("search parse: %w", err)
	}

	raw := []byte(llm.CleanJSONBlock(text))
	if err := schemas.ValidateParsedQuery(raw); err != nil {
		return nil, fmt.Errorf("search parse: oracle output rejected: %w", err)
	}

	var parsed types.ParsedQuery
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("search parse: failed to decode oracle output: %w", err)
	}
	return &types.SearchResponse{ParsedQuery: &parsed}, nil
}

// Application hands the application to the sink and acknowledges it.
func (g *gateway) Application(ctx context.Context, app *types.Application) (*types.SubmissionAck, error) {
	if err := g.acknowledge(ctx, sink.KindApplication, app); err != nil {
		return nil, err
	}
	return &types.SubmissionAck{Success: true}, nil
}

// JobSubmission hands the posting to the sink and acknowledges it.
func (g *gateway) JobSubmission(ctx context.Context, sub *types.JobSubmission) (*types.SubmissionAck, error) {
	if err := g.acknowledge(ctx, sink.KindJobSubmission, sub); err != nil {
		return nil, err
	}
	return &types.SubmissionAck{Success: true, Message: jobSubmissionMessage}, nil
}

// acknowledge waits out the ack delay and then hands payload to the sink.
// A request cancelled during the delay never reaches the sink, so a retry cannot queue a duplicate.
func (g *gateway) acknowledge(ctx context.Context, kind sink.Kind, payload any) error {
	if err := g.delay(ctx); err != nil {
		return err
	}

	rec := sink.NewRecord(kind, payload)
	if err := g.sink.Submit(ctx, rec); err != nil {
		return fmt.Errorf("failed to hand off %s: %w", kind, err)
	}
	log.Printf("[gateway] accepted %s %s", kind, rec.ID)
	return nil
}

func (g *gateway) delay(ctx context.Context) error {
	if g.ackDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.ackDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *gateway) withOracleTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.oracleTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.oracleTimeout)
}

// classifyDecodeError maps envelope decoding failures onto the gateway taxonomy.
// Anything that is not a tag or payload problem stays an internal error.
func classifyDecodeError(err error) error {
	var typeErr *types.UnknownRequestTypeError
	if errors.As(err, &typeErr) {
		return &ErrInvalidRequestType{Type: typeErr.Type}
	}
	var payloadErr *types.InvalidPayloadError
	if errors.As(err, &payloadErr) {
		return &ErrInvalidPayload{Type: payloadErr.Type, Cause: payloadErr.Cause}
	}
	return err
}
