// Package goquery scans scraped HTML definitions with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordlist"
)

// Ensure PhoneticFinder implements wordlist.PhoneticFinder at compile time.
var _ wordlist.PhoneticFinder = (*PhoneticFinder)(nil)

// phoneticSelector matches spans whose class attribute is exactly "phonetic".
const phoneticSelector = `span[class="phonetic"]`

// PhoneticFinder extracts the phonetic transcription span from a definition.
type PhoneticFinder struct{}

// NewPhoneticFinder creates a new PhoneticFinder.
func NewPhoneticFinder() *PhoneticFinder {
	return &PhoneticFinder{}
}

// FindPhonetic returns the trimmed text of the first phonetic span, or an
// empty string if the markup has none or cannot be parsed.
func (f *PhoneticFinder) FindPhonetic(html string) string {
	if !strings.Contains(html, "phonetic") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	return wordlist.Trim(doc.Find(phoneticSelector).First().Text())
}
