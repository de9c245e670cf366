package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// LogSink writes each submission to a logger and keeps nothing.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink returns a sink that logs to logger, or to the standard logger when nil.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

// Submit logs the record.
func (s *LogSink) Submit(_ context.Context, rec Record) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", rec.Kind, err)
	}
	s.logger.Printf("[sink] received %s %s: %s", rec.Kind, rec.ID, payload)
	return nil
}

// Close is a no-op.
func (s *LogSink) Close() error {
	return nil
}
