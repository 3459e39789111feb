package wordlist

import (
	"regexp"
	"strings"
)

// MaxExamples caps the number of example sentences per entry.
const MaxExamples = 3

var quotedRe = regexp.MustCompile(`"(.*?)"`)

// ExtractExamples returns up to MaxExamples double-quoted sentences from a
// record's definition text, in order of appearance.
func ExtractExamples(meaningText *string) []Example {
	examples := []Example{}
	if meaningText == nil {
		return examples
	}

	for _, line := range strings.Split(NormalizeNewlines(*meaningText), "\n") {
		if len(examples) >= MaxExamples {
			break
		}
		if !strings.Contains(line, `"`) {
			continue
		}
		for _, m := range quotedRe.FindAllStringSubmatch(line, -1) {
			en := Trim(m[1])
			if en != "" && len(examples) < MaxExamples {
				examples = append(examples, Example{EN: en})
			}
		}
	}

	return examples
}

// ExtractDetail returns the full definition text with normalized line
// endings and surrounding whitespace removed.
func ExtractDetail(meaningText *string) string {
	if meaningText == nil {
		return ""
	}
	return Trim(NormalizeNewlines(*meaningText))
}
