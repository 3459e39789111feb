package wordlist

// ExtractPhonetic returns the record's phonetic transcription, preferring
// the British field, then the American field, then a phonetic span in the
// HTML definition. The finder may be nil, in which case markup is ignored.
func ExtractPhonetic(rec *InputRecord, finder PhoneticFinder) string {
	if rec == nil {
		return ""
	}
	if s := Trim(deref(rec.PhoneticBrE)); s != "" {
		return s
	}
	if s := Trim(deref(rec.PhoneticAmE)); s != "" {
		return s
	}
	if finder != nil && rec.MeaningHTML != nil {
		return Trim(finder.FindPhonetic(*rec.MeaningHTML))
	}
	return ""
}
