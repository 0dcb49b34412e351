package policy

import (
	"encoding/json"
	"strings"

	"github.com/go-yaml/yaml"

	"github.com/totegamma/allowme/core"
)

// Document is the wire format of a policy definition. Statement order in the
// document is evaluation order. SchemaVersion is accepted for forward
// compatibility and currently ignored.
type Document struct {
	SchemaVersion string           `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
	Statements    []core.Statement `json:"statements" yaml:"statements"`
}

func decodeJSON(source string) (Document, error) {
	var document Document
	err := json.Unmarshal([]byte(source), &document)
	if err != nil {
		return Document{}, core.NewErrorParse(err)
	}
	return document, nil
}

func decodeYAML(source string) (Document, error) {
	var document Document
	err := yaml.Unmarshal([]byte(source), &document)
	if err != nil {
		return Document{}, core.NewErrorParse(err)
	}
	return document, nil
}

func decodeSource(source string) (Document, error) {
	if strings.HasPrefix(strings.TrimSpace(source), "{") {
		return decodeJSON(source)
	}
	return decodeYAML(source)
}
