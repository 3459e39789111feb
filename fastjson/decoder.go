// Package fastjson decodes the scraped dataset into input records.
package fastjson

import (
	"bytes"

	"github.com/fwojciec/wordlist"
	"github.com/valyala/fastjson"
)

// Ensure Decoder implements wordlist.RecordDecoder at compile time.
var _ wordlist.RecordDecoder = (*Decoder)(nil)

var utf8BOM = []byte("\xef\xbb\xbf")

// Decoder parses a JSON array of scraped dictionary records.
// Fields holding anything other than a string are treated as absent, and
// array elements that are not objects decode to nil records. When a key
// repeats within an object the last occurrence wins.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeRecords parses data into records, one per array element.
func (d *Decoder) DecodeRecords(data []byte) ([]*wordlist.InputRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	// The parser skips string validation, so escapes and control
	// characters are checked up front.
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, wordlist.Errorf(wordlist.EINVALID, "input is not valid JSON: %v", err)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, wordlist.Errorf(wordlist.EINVALID, "input is not valid JSON: %v", err)
	}

	if v.Type() != fastjson.TypeArray {
		return nil, wordlist.Errorf(wordlist.EINVALID, "input JSON must be an array of records, got %s", v.Type())
	}

	items := v.GetArray()
	records := make([]*wordlist.InputRecord, len(items))
	for i, item := range items {
		obj, err := item.Object()
		if err != nil {
			continue
		}
		records[i] = decodeRecord(obj)
	}

	return records, nil
}

func decodeRecord(obj *fastjson.Object) *wordlist.InputRecord {
	rec := &wordlist.InputRecord{}
	fields := map[string]**string{
		"word":          &rec.Word,
		"phonetic_br_e": &rec.PhoneticBrE,
		"phonetic_am_e": &rec.PhoneticAmE,
		"meaning_html":  &rec.MeaningHTML,
		"meaning_text":  &rec.MeaningText,
		"audio_br_url":  &rec.AudioBrURL,
		"audio_am_url":  &rec.AudioAmURL,
		"detail_url":    &rec.DetailURL,
	}
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if field, ok := fields[string(key)]; ok {
			*field = stringValue(v)
		}
	})
	return rec
}

// stringValue returns a copy of v's string, or nil when v is not a string.
func stringValue(v *fastjson.Value) *string {
	if v.Type() != fastjson.TypeString {
		return nil
	}
	s := string(v.GetStringBytes())
	return &s
}
