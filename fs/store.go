package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/wordlist"
	"github.com/spf13/afero"
)

// Ensure ArtifactStore implements wordlist.ArtifactStore at compile time.
var _ wordlist.ArtifactStore = (*ArtifactStore)(nil)

// tempSuffix marks artifacts staged next to their final location.
const tempSuffix = ".tmp"

// backupSuffix marks previous artifacts kept while a commit is in progress.
const backupSuffix = ".bak"

// ArtifactStore implements wordlist.ArtifactStore with atomic update semantics.
// Artifacts are saved next to their target with a .tmp suffix, then renamed
// into place on Commit.
type ArtifactStore struct {
	fs     afero.Fs
	staged []string
}

// NewArtifactStore creates a new ArtifactStore writing to fsys.
func NewArtifactStore(fsys afero.Fs) *ArtifactStore {
	return &ArtifactStore{fs: fsys}
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *wordlist.Artifact) error {
	if artifact.Path == "" {
		return wordlist.Errorf(wordlist.EINVALID, "artifact %q path required", artifact.Name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Create parent directories
	if err := s.fs.MkdirAll(filepath.Dir(artifact.Path), 0755); err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, artifact.Path+tempSuffix, artifact.Content, 0644); err != nil {
		return err
	}
	s.staged = append(s.staged, artifact.Path)
	return nil
}

// Commit moves every staged artifact into place. Existing targets are
// renamed to .bak siblings first and restored if any move fails, so targets
// are either all replaced or all left as they were.
func (s *ArtifactStore) Commit() error {
	var backups, committed []string

	for _, path := range s.staged {
		exists, err := afero.Exists(s.fs, path)
		if err != nil {
			return s.rollback(committed, backups, err)
		}
		if !exists {
			continue
		}
		if err := s.fs.Rename(path, path+backupSuffix); err != nil {
			return s.rollback(committed, backups, err)
		}
		backups = append(backups, path)
	}

	for _, path := range s.staged {
		if err := s.fs.Rename(path+tempSuffix, path); err != nil {
			return s.rollback(committed, backups, err)
		}
		committed = append(committed, path)
	}

	for _, path := range backups {
		_ = s.fs.Remove(path + backupSuffix)
	}
	s.staged = nil
	return nil
}

// rollback returns committed artifacts to staging and restores backups.
func (s *ArtifactStore) rollback(committed, backups []string, cause error) error {
	errs := []error{cause}
	for _, path := range committed {
		if err := s.fs.Rename(path, path+tempSuffix); err != nil {
			errs = append(errs, err)
		}
	}
	for _, path := range backups {
		if err := s.fs.Rename(path+backupSuffix, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *ArtifactStore) Abort() error {
	var errs []error
	for _, path := range s.staged {
		if err := s.fs.Remove(path + tempSuffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	s.staged = nil
	return errors.Join(errs...)
}
