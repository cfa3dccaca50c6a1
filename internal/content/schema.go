package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON schema every content catalog must satisfy.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"units": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"lecture", "quiz", "challenge", "checkpoint"},
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard", "very_hard"},
					},
					"skills": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
					"base_xp": map[string]any{"type": "integer", "minimum": 1},
				},
				"required":             []any{"id", "type", "difficulty", "skills"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"units"},
	"additionalProperties": false,
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledCatalogSchema compiles the catalog schema once and caches it.
func compiledCatalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://content-catalog.json", defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile("schema://content-catalog.json")
	})
	return schemaCompiled, schemaErr
}
