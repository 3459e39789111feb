package mock

import (
	"context"

	"github.com/fwojciec/wordlist"
)

// Compile-time interface verification.
var (
	_ wordlist.RecordDecoder  = (*RecordDecoder)(nil)
	_ wordlist.RecordSource   = (*RecordSource)(nil)
	_ wordlist.PhoneticFinder = (*PhoneticFinder)(nil)
	_ wordlist.ArtifactStore  = (*ArtifactStore)(nil)
)

// RecordDecoder is a mock implementation of wordlist.RecordDecoder.
type RecordDecoder struct {
	DecodeRecordsFn func(data []byte) ([]*wordlist.InputRecord, error)
}

func (d *RecordDecoder) DecodeRecords(data []byte) ([]*wordlist.InputRecord, error) {
	return d.DecodeRecordsFn(data)
}

// RecordSource is a mock implementation of wordlist.RecordSource.
type RecordSource struct {
	LoadRecordsFn func(ctx context.Context) ([]*wordlist.InputRecord, error)
}

func (s *RecordSource) LoadRecords(ctx context.Context) ([]*wordlist.InputRecord, error) {
	return s.LoadRecordsFn(ctx)
}

// PhoneticFinder is a mock implementation of wordlist.PhoneticFinder.
type PhoneticFinder struct {
	FindPhoneticFn func(html string) string
}

func (f *PhoneticFinder) FindPhonetic(html string) string {
	return f.FindPhoneticFn(html)
}

// ArtifactStore is a mock implementation of wordlist.ArtifactStore.
type ArtifactStore struct {
	SaveFn   func(ctx context.Context, artifact *wordlist.Artifact) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *wordlist.Artifact) error {
	return s.SaveFn(ctx, artifact)
}

func (s *ArtifactStore) Commit() error {
	return s.CommitFn()
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}
