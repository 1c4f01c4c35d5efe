package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptySet indicates a question-set file without content.
var ErrEmptySet = errors.New("question set is empty")

// LoadSet reads, schema-checks, parses, and validates a question-set file.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read question set: %w", err)
	}
	return ParseSet(data, filepath.Ext(path))
}

// ParseSet decodes a question set from JSON (ext ".json") or YAML (anything
// else) and returns the normalized result.
func ParseSet(data []byte, ext string) (Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Set{}, ErrEmptySet
	}
	isJSON := strings.EqualFold(ext, ".json")
	document, err := decodeDocument(data, isJSON)
	if err != nil {
		return Set{}, err
	}
	if err := checkSchema(document); err != nil {
		return Set{}, err
	}
	var set Set
	if isJSON {
		set, err = parseJSONSet(data)
	} else {
		set, err = parseYAMLSet(data)
	}
	if err != nil {
		return Set{}, err
	}
	return NormalizeSet(set)
}

func decodeDocument(data []byte, isJSON bool) (any, error) {
	var document any
	if isJSON {
		if err := json.Unmarshal(data, &document); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return document, nil
	}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return document, nil
}

func parseJSONSet(data []byte) (Set, error) {
	var set Set
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Set{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Set{}, fmt.Errorf("parse json: %w", err)
	}
	return set, nil
}

func parseYAMLSet(data []byte) (Set, error) {
	var set Set
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Set{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Set{}, fmt.Errorf("parse yaml: %w", err)
	}
	return set, nil
}
