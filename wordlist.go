// Package wordlist converts a scraped vocabulary dataset into the compact
// word-list format consumed by the flashcard application. It parses the
// phonetic transcription, short gloss and example sentences out of each
// record's free-text definition and assigns stable positional identifiers.
//
// This package contains domain types, interfaces and the pure extraction
// logic following Ben Johnson's Standard Package Layout. Implementations of
// the I/O collaborators live in subdirectories named after their primary
// dependency (e.g., fs/, fastjson/, goquery/).
package wordlist
