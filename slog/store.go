package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordlist"
)

// Ensure LoggingArtifactStore implements wordlist.ArtifactStore.
var _ wordlist.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore with debug logging.
type LoggingArtifactStore struct {
	next   wordlist.ArtifactStore
	logger *slog.Logger
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next wordlist.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the staged artifact.
func (s *LoggingArtifactStore) Save(ctx context.Context, artifact *wordlist.Artifact) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save artifact",
			"name", artifact.Name,
			"path", artifact.Path,
			"bytes", len(artifact.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, artifact)
}

// Commit delegates to the wrapped store and logs the outcome.
func (s *LoggingArtifactStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit artifacts",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the outcome.
func (s *LoggingArtifactStore) Abort() (err error) {
	defer func() {
		s.logger.Warn("abort artifacts", "err", err)
	}()
	return s.next.Abort()
}
