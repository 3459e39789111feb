package wordlist

import (
	"bytes"
	"encoding/json"
	"text/template"
)

// Artifact names produced by Serializer.
const (
	ArtifactJSON   = "json"
	ArtifactModule = "module"
)

// DefaultBinding is the name the module artifact exports.
const DefaultBinding = "cet4Words"

// moduleTemplate wraps the JSON rendering in an ES module whose default
// export is the word list.
var moduleTemplate = template.Must(template.New("module").Parse(
	"// Code generated by cet4build. DO NOT EDIT.\n" +
		"const {{.Binding}} = {{.JSON}};\n" +
		"\n" +
		"export default {{.Binding}};\n",
))

// RenderJSON renders entries as a JSON array indented by two spaces.
// HTML characters are left unescaped.
func RenderJSON(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// RenderModule embeds an already rendered JSON document in the module
// template under the given binding name.
func RenderModule(data []byte, binding string) ([]byte, error) {
	if binding == "" {
		return nil, Errorf(EINVALID, "module binding name required")
	}

	var buf bytes.Buffer
	err := moduleTemplate.Execute(&buf, struct {
		Binding string
		JSON    string
	}{binding, string(data)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serializer renders the word list into its output artifacts.
type Serializer struct {
	JSONPath   string
	ModulePath string

	// Binding defaults to DefaultBinding when empty.
	Binding string
}

// Artifacts renders entries into the JSON artifact followed by the module
// artifact.
func (s *Serializer) Artifacts(entries []*Entry) ([]*Artifact, error) {
	data, err := RenderJSON(entries)
	if err != nil {
		return nil, err
	}

	binding := s.Binding
	if binding == "" {
		binding = DefaultBinding
	}
	module, err := RenderModule(data, binding)
	if err != nil {
		return nil, err
	}

	return []*Artifact{
		{Name: ArtifactJSON, Path: s.JSONPath, Content: data},
		{Name: ArtifactModule, Path: s.ModulePath, Content: module},
	}, nil
}
