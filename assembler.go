package wordlist

// Assembler turns input records into word-list entries.
type Assembler struct {
	// Phonetics scans HTML definitions when no phonetic field is present.
	// Optional.
	Phonetics PhoneticFinder

	// IDPrefix defaults to DefaultIDPrefix when empty.
	IDPrefix string
}

// NewAssembler returns an Assembler using the default ID prefix.
func NewAssembler(phonetics PhoneticFinder) *Assembler {
	return &Assembler{Phonetics: phonetics, IDPrefix: DefaultIDPrefix}
}

// Assemble builds entries in input order. Records without a word or without
// any usable definition are dropped; IDs always reflect the original input
// position, so dropped records leave gaps in the numbering.
func (a *Assembler) Assemble(records []*InputRecord) ([]*Entry, BuildStats) {
	prefix := a.IDPrefix
	if prefix == "" {
		prefix = DefaultIDPrefix
	}

	entries := make([]*Entry, 0, len(records))
	stats := BuildStats{Processed: len(records)}

	for index, rec := range records {
		entry := a.assemble(prefix, index, rec)
		switch {
		case entry == nil && (rec == nil || Trim(deref(rec.Word)) == ""):
			stats.SkippedNoWord++
		case entry == nil:
			stats.SkippedNoDefinition++
		default:
			entries = append(entries, entry)
		}
	}

	stats.Kept = len(entries)
	return entries, stats
}

func (a *Assembler) assemble(prefix string, index int, rec *InputRecord) *Entry {
	if rec == nil || rec.Word == nil {
		return nil
	}
	word := Trim(*rec.Word)
	if word == "" {
		return nil
	}

	meaning := ExtractMeaning(word, rec.MeaningText)
	detail := ExtractDetail(rec.MeaningText)
	if meaning == "" && detail == "" {
		return nil
	}

	return &Entry{
		ID:         FormatID(prefix, index),
		Word:       word,
		Phonetic:   ExtractPhonetic(rec, a.Phonetics),
		Meaning:    meaning,
		Detail:     detail,
		Examples:   ExtractExamples(rec.MeaningText),
		AudioBrURL: deref(rec.AudioBrURL),
		AudioAmURL: deref(rec.AudioAmURL),
		SourceURL:  deref(rec.DetailURL),
	}
}
