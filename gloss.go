package wordlist

import "strings"

// MaxGlossLength is the length after which gloss accumulation stops. The
// line that crosses it is still included.
const MaxGlossLength = 220

// SynonymsMarker starts the synonyms section, which ends the gloss.
const SynonymsMarker = "同义词："

// exampleMarker opens a quoted example sentence line, which also ends the
// gloss.
const exampleMarker = `"`

// glossState is the position of the gloss scanner within a definition.
type glossState int

const (
	expectWordHeader glossState = iota
	expectTag
	collectingGloss
	glossDone
)

func (s glossState) String() string {
	switch s {
	case expectWordHeader:
		return "expectWordHeader"
	case expectTag:
		return "expectTag"
	case collectingGloss:
		return "collectingGloss"
	case glossDone:
		return "done"
	}
	return "unknown"
}

// glossScanner consumes non-empty definition lines one at a time.
type glossScanner struct {
	word   string
	state  glossState
	parts  []string
	length int
}

func newGlossScanner(word string) *glossScanner {
	return &glossScanner{word: Trim(word)}
}

// feed advances the scanner by one line.
func (s *glossScanner) feed(line string) {
	switch s.state {
	case expectWordHeader:
		s.state = expectTag
		if s.word != "" && strings.EqualFold(line, s.word) {
			return
		}
		fallthrough
	case expectTag:
		s.state = collectingGloss
		if isTagLine(line) {
			return
		}
		fallthrough
	case collectingGloss:
		if strings.HasPrefix(line, SynonymsMarker) || strings.HasPrefix(line, exampleMarker) {
			s.state = glossDone
			return
		}
		if line == "" {
			return
		}
		if len(s.parts) > 0 {
			s.length++
		}
		s.parts = append(s.parts, line)
		s.length += textLength(line)
		if s.length > MaxGlossLength {
			s.state = glossDone
		}
	}
}

func (s *glossScanner) done() bool {
	return s.state == glossDone
}

func (s *glossScanner) gloss() string {
	return strings.Join(s.parts, " ")
}

// isTagLine reports whether line is a fully bracketed part-of-speech tag.
func isTagLine(line string) bool {
	return len(line) >= 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

// ExtractMeaning returns the short gloss from a record's definition text.
// A leading line repeating the word and a following bracketed tag line are
// skipped; accumulation stops at the synonyms section, at the first quoted
// example line, or once the gloss exceeds MaxGlossLength.
func ExtractMeaning(word string, meaningText *string) string {
	if meaningText == nil {
		return ""
	}
	s := newGlossScanner(word)
	for _, line := range nonEmptyLines(*meaningText) {
		s.feed(line)
		if s.done() {
			break
		}
	}
	return s.gloss()
}
