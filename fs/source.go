// Package fs reads the input dataset and writes output artifacts through an
// afero file system.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/wordlist"
	"github.com/spf13/afero"
)

// Ensure Source implements wordlist.RecordSource at compile time.
var _ wordlist.RecordSource = (*Source)(nil)

// Source loads input records from a single file.
type Source struct {
	fs      afero.Fs
	path    string
	decoder wordlist.RecordDecoder
}

// NewSource creates a new Source reading path from fsys.
func NewSource(fsys afero.Fs, path string, decoder wordlist.RecordDecoder) *Source {
	return &Source{fs: fsys, path: path, decoder: decoder}
}

// LoadRecords reads the whole file into memory and decodes it.
func (s *Source) LoadRecords(ctx context.Context) ([]*wordlist.InputRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, wordlist.Errorf(wordlist.ENOTFOUND, "input file not found: %s", s.path)
	} else if err != nil {
		return nil, fmt.Errorf("read input %q: %w", s.path, err)
	}

	return s.decoder.DecodeRecords(data)
}
