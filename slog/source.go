// Package slog decorates word-list services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordlist"
)

// Ensure LoggingRecordSource implements wordlist.RecordSource.
var _ wordlist.RecordSource = (*LoggingRecordSource)(nil)

// LoggingRecordSource wraps a RecordSource with debug logging.
type LoggingRecordSource struct {
	next   wordlist.RecordSource
	logger *slog.Logger
}

// NewLoggingRecordSource creates a new LoggingRecordSource.
func NewLoggingRecordSource(next wordlist.RecordSource, logger *slog.Logger) *LoggingRecordSource {
	return &LoggingRecordSource{next: next, logger: logger}
}

// LoadRecords delegates to the wrapped source and logs the operation.
func (s *LoggingRecordSource) LoadRecords(ctx context.Context) (records []*wordlist.InputRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadRecords(ctx)
}
