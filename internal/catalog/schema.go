package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema defines the JSON schema for catalog content files. Kind-specific
// field requirements (options for multiple choice, pairs for matching, ...) are
// enforced by the decoder; the schema covers structure and types.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"modules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"order": map[string]any{"type": "integer", "minimum": 1},
					"lessons": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":      map[string]any{"type": "string", "minLength": 1},
								"title":   map[string]any{"type": "string", "minLength": 1},
								"content": map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"id", "title", "content"},
							"additionalProperties": false,
						},
					},
					"questions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"multiple_choice", "fill_blank", "matching", "scenario"},
								},
								"prompt": map[string]any{"type": "string", "minLength": 1},
								"options": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
								"answer":      map[string]any{"type": "string"},
								"explanation": map[string]any{"type": "string"},
								"pairs": map[string]any{
									"type":                 "object",
									"additionalProperties": map[string]any{"type": "string"},
								},
								"model_answer": map[string]any{"type": "string"},
							},
							"required":             []any{"type", "prompt"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "order", "lessons"},
				"additionalProperties": false,
			},
		},
		"flashcards": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"front": map[string]any{"type": "string", "minLength": 1},
					"back":  map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"front", "back"},
				"additionalProperties": false,
			},
		},
		"speed_pairs": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"label":       map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"description", "label"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"modules"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validate checks raw catalog JSON against the schema.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the catalog schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
