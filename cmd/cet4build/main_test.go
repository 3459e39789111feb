package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/wordlist"
	main "github.com/fwojciec/wordlist/cmd/cet4build"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	inputPath  = "/tool/data/cet4_raw.json"
	jsonPath   = "/tool/data/cet4_words.json"
	modulePath = "/tool/data/cet4_words.js"
)

// newMain returns a Main backed by an in-memory file system rooted at /tool.
func newMain(t *testing.T, input string) (*main.Main, afero.Fs) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	if input != "" {
		require.NoError(t, afero.WriteFile(fsys, inputPath, []byte(input), 0644))
	}
	return &main.Main{FS: fsys, BaseDir: "/tool"}, fsys
}

func readEntries(t *testing.T, fsys afero.Fs) []*wordlist.Entry {
	t.Helper()

	data, err := afero.ReadFile(fsys, jsonPath)
	require.NoError(t, err)
	var entries []*wordlist.Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	return entries
}

func assertNoOutput(t *testing.T, fsys afero.Fs) {
	t.Helper()

	for _, path := range []string{jsonPath, modulePath, jsonPath + ".tmp", modulePath + ".tmp"} {
		exists, err := afero.Exists(fsys, path)
		require.NoError(t, err)
		assert.False(t, exists, "%s should not exist", path)
	}
}

// Story: Building the Word List
//
// The operator runs the tool without arguments. It reads the scraped dataset
// next to the executable and writes the JSON list and the module wrapper.

func TestBuild_WritesBothArtifacts(t *testing.T) {
	t.Parallel()

	// Given a dataset with one complete record
	input := `[{"word":"apple","meaning_text":"apple\n[n.]\nA fruit.\n\"I ate an apple.\" \"She bought apples.\""}]`
	m, fsys := newMain(t, input)
	var stdout, stderr bytes.Buffer

	// When the tool runs without arguments
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	// Then both artifacts hold the assembled entry
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	entries := readEntries(t, fsys)
	require.Len(t, entries, 1)
	assert.Equal(t, "cet4_00001", entries[0].ID)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Equal(t, "A fruit.", entries[0].Meaning)
	assert.Equal(t, []wordlist.Example{
		{EN: "I ate an apple.", CN: ""},
		{EN: "She bought apples.", CN: ""},
	}, entries[0].Examples)

	data, err := afero.ReadFile(fsys, jsonPath)
	require.NoError(t, err)
	module, err := afero.ReadFile(fsys, modulePath)
	require.NoError(t, err)
	assert.Equal(t, "// Code generated by cet4build. DO NOT EDIT.\nconst cet4Words = "+string(data)+";\n\nexport default cet4Words;\n", string(module))

	// And the summary reports counts and relative paths
	assert.Contains(t, stdout.String(), "Processed 1 records, kept 1 words")
	assert.Contains(t, stdout.String(), "Generated data/cet4_words.json")
	assert.Contains(t, stdout.String(), "Generated data/cet4_words.js")
}

func TestBuild_KeepsOriginalPositionInIDs(t *testing.T) {
	t.Parallel()

	// Given a dataset whose second record has no word
	input := `[
		{"word":"first","meaning_text":"one"},
		{"meaning_text":"orphan"},
		{"word":"third","meaning_text":"three"},
		{"word":"   "},
		{"word":"apple","meaning_html":"<span class=\"phonetic\">ˈæpəl</span>"}
	]`
	m, fsys := newMain(t, input)
	var stdout, stderr bytes.Buffer

	// When the tool runs
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	// Then skipped records leave gaps in the numbering
	require.NoError(t, err)
	entries := readEntries(t, fsys)
	require.Len(t, entries, 2)
	assert.Equal(t, "cet4_00001", entries[0].ID)
	assert.Equal(t, "cet4_00003", entries[1].ID)
	assert.Contains(t, stdout.String(), "Processed 5 records, kept 2 words")
}

func TestBuild_ResolvesPhoneticFromMarkup(t *testing.T) {
	t.Parallel()

	input := `[{"word":"apple","meaning_html":"<p><span class=\"phonetic\"> ˈæpəl </span></p>","meaning_text":"苹果"}]`
	m, fsys := newMain(t, input)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.NoError(t, err)
	entries := readEntries(t, fsys)
	require.Len(t, entries, 1)
	assert.Equal(t, "ˈæpəl", entries[0].Phonetic)
}

func TestBuild_WritesEmptyListForBlankWords(t *testing.T) {
	t.Parallel()

	m, fsys := newMain(t, `[{"word":"   "}]`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.NoError(t, err)
	data, err := afero.ReadFile(fsys, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Contains(t, stdout.String(), "kept 0 words")
}

func TestBuild_IsIdempotent(t *testing.T) {
	t.Parallel()

	input := `[{"word":"apple","meaning_text":"A fruit. \"An apple a day.\""},{"word":"pear","meaning_text":"Another fruit."}]`
	m, fsys := newMain(t, input)
	var stdout, stderr bytes.Buffer

	require.NoError(t, m.Run(context.Background(), nil, &stdout, &stderr))
	first, err := afero.ReadFile(fsys, modulePath)
	require.NoError(t, err)

	require.NoError(t, m.Run(context.Background(), nil, &stdout, &stderr))
	second, err := afero.ReadFile(fsys, modulePath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Story: Fatal Input Errors
//
// A missing, malformed or non-array input stops the build with a distinct
// diagnostic and leaves no output behind.

func TestBuild_FailsWhenInputMissing(t *testing.T) {
	t.Parallel()

	// Given no input file
	m, fsys := newMain(t, "")
	var stdout, stderr bytes.Buffer

	// When the tool runs
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	// Then it fails with a not found diagnostic and writes nothing
	require.Error(t, err)
	assert.Equal(t, wordlist.ENOTFOUND, wordlist.ErrorCode(err))
	assert.Contains(t, stderr.String(), "input file not found")
	assert.Empty(t, stdout.String())
	assertNoOutput(t, fsys)
}

func TestBuild_FailsOnInvalidJSON(t *testing.T) {
	t.Parallel()

	m, fsys := newMain(t, `[{"word": "apple"`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, wordlist.EINVALID, wordlist.ErrorCode(err))
	assert.Contains(t, stderr.String(), "not valid JSON")
	assertNoOutput(t, fsys)
}

func TestBuild_FailsWhenInputIsNotArray(t *testing.T) {
	t.Parallel()

	m, fsys := newMain(t, `{"word": "apple"}`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, wordlist.EINVALID, wordlist.ErrorCode(err))
	assert.Contains(t, stderr.String(), "must be an array")
	assertNoOutput(t, fsys)
}

// Story: Optional Overrides
//
// Flags are optional and only relocate files.

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	m, _ := newMain(t, "")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "cet4build")
	assert.Contains(t, stdout.String(), "--json-out")
}

func TestCLI_RelocatesFiles(t *testing.T) {
	t.Parallel()

	// Given an input file outside the default location
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/in.json", []byte(`[{"word":"apple","meaning_text":"A fruit."}]`), 0644))
	m := &main.Main{FS: fsys}
	var stdout, stderr bytes.Buffer

	// When flags point at other locations
	err := m.Run(context.Background(), []string{
		"--base-dir", "/work",
		"--input", "in.json",
		"--json-out", "out/words.json",
		"--module-out", "/elsewhere/words.js",
		"--binding", "words",
	}, &stdout, &stderr)

	// Then outputs are written there
	require.NoError(t, err)
	exists, err := afero.Exists(fsys, "/work/out/words.json")
	require.NoError(t, err)
	assert.True(t, exists)
	module, err := afero.ReadFile(fsys, "/elsewhere/words.js")
	require.NoError(t, err)
	assert.Contains(t, string(module), "export default words;")
	assert.Contains(t, stdout.String(), "Generated out/words.json")
}

func TestCLI_VerboseLogsDiagnostics(t *testing.T) {
	t.Parallel()

	m, _ := newMain(t, `[{"word":"apple","meaning_text":"A fruit."},{"word":"pear"}]`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--verbose"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "load records")
	assert.Contains(t, stderr.String(), "build complete")
	assert.Contains(t, stderr.String(), "skipped_no_definition=1")
}

func TestCLI_RejectsUnknownFlag(t *testing.T) {
	t.Parallel()

	m, fsys := newMain(t, `[]`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--nope"}, &stdout, &stderr)

	require.Error(t, err)
	assertNoOutput(t, fsys)
}
