package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const setSchemaURL = "quizcard://question-set.schema.json"

// setSchema is the structural schema every question-set file must satisfy
// before it is decoded into a Set.
const setSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "questions"],
  "additionalProperties": false,
  "properties": {
    "version": { "const": 1 },
    "title": { "type": "string" },
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["type", "question", "correct_answer"],
        "additionalProperties": false,
        "properties": {
          "id": { "type": "string" },
          "type": { "type": "string" },
          "question": { "type": "string" },
          "audio_url": { "type": "string" },
          "options": { "type": "array", "items": { "type": "string" } },
          "correct_answer": { "type": "string" },
          "explanation": { "type": "string" }
        }
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

// loadSetSchema compiles the embedded set schema once.
func loadSetSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(setSchemaURL, strings.NewReader(setSchema)); err != nil {
			compiledSchemaErr = fmt.Errorf("add set schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile(setSchemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// checkSchema validates a decoded document against the set schema. The
// document is round-tripped through JSON so YAML scalars use JSON types.
func checkSchema(document any) error {
	schema, err := loadSetSchema()
	if err != nil {
		return fmt.Errorf("compile set schema: %w", err)
	}
	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("encode set document: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return fmt.Errorf("decode set document: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return &ValidationError{Issues: []Issue{{Field: "schema", Message: err.Error()}}}
	}
	return nil
}
