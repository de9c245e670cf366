// Package sink hands received applications and job submissions to whatever
// downstream process reviews them. The gateway only acknowledges receipt.
package sink

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what was submitted.
type Kind string

// Submission kinds.
const (
	KindApplication   Kind = "application"
	KindJobSubmission Kind = "job-submission"
)

// Record is one received submission.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	ReceivedAt time.Time `json:"received_at"`
	Payload    any       `json:"payload"`
}

// NewRecord stamps a payload with a fresh id and the current time.
func NewRecord(kind Kind, payload any) Record {
	return Record{
		ID:         uuid.New(),
		Kind:       kind,
		ReceivedAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Sink accepts submissions. Implementations must be safe for concurrent use.
type Sink interface {
	Submit(ctx context.Context, rec Record) error
	Close() error
}
