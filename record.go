package wordlist

import (
	"context"
	"fmt"
)

// DefaultIDPrefix is prepended to the sequence number of every entry ID.
const DefaultIDPrefix = "cet4_"

// IDWidth is the zero-padded width of the sequence number in an entry ID.
const IDWidth = 5

// InputRecord is one raw scraped dictionary entry. Fields are nil when the
// source omits them or carries a non-string value.
type InputRecord struct {
	Word        *string
	PhoneticBrE *string
	PhoneticAmE *string
	MeaningHTML *string
	MeaningText *string
	AudioBrURL  *string
	AudioAmURL  *string
	DetailURL   *string
}

// Example is a quoted usage sentence. CN is reserved for a translation and
// is always empty at build time.
type Example struct {
	EN string `json:"en"`
	CN string `json:"cn"`
}

// Entry is one normalized word-list record.
type Entry struct {
	ID         string    `json:"id"`
	Word       string    `json:"word"`
	Phonetic   string    `json:"phonetic"`
	Meaning    string    `json:"meaning"`
	Detail     string    `json:"detail"`
	Examples   []Example `json:"examples"`
	AudioBrURL string    `json:"audioBrUrl"`
	AudioAmURL string    `json:"audioAmUrl"`
	SourceURL  string    `json:"sourceUrl"`
}

// BuildStats summarizes one assembly pass.
type BuildStats struct {
	Processed           int
	Kept                int
	SkippedNoWord       int
	SkippedNoDefinition int
}

// FormatID returns the identifier for the record at the given 0-based input
// position. Numbers wider than IDWidth are not truncated.
func FormatID(prefix string, index int) string {
	return fmt.Sprintf("%s%0*d", prefix, IDWidth, index+1)
}

// RecordDecoder turns raw input bytes into records.
// Returns EINVALID if the data is not JSON or not an array.
type RecordDecoder interface {
	DecodeRecords(data []byte) ([]*InputRecord, error)
}

// RecordSource loads the complete input dataset.
// Returns ENOTFOUND if the input does not exist.
type RecordSource interface {
	LoadRecords(ctx context.Context) ([]*InputRecord, error)
}

// PhoneticFinder locates a phonetic transcription embedded in HTML markup.
// Returns an empty string when the markup carries none.
type PhoneticFinder interface {
	FindPhonetic(html string) string
}

// Artifact is one rendered output file.
type Artifact struct {
	Name    string
	Path    string
	Content []byte
}

// ArtifactStore persists artifacts with atomic semantics.
// Save stages an artifact; Commit replaces every staged target at once;
// Abort discards staged artifacts.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *Artifact) error
	Commit() error
	Abort() error
}
