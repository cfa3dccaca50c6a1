package badges

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema validates an external badge catalog file before any
// definition is trusted.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"badges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"icon":        map[string]any{"type": "string"},
					"threshold":   map[string]any{"type": "number", "exclusiveMinimum": 0},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"streak", "level", "xp", "completion", "mastery"},
					},
					"metric": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "name", "threshold", "category"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"badges"},
	"additionalProperties": false,
}

type catalogFile struct {
	Badges []Definition `json:"badges"`
}

// LoadCatalog reads badge definitions from a JSON file, validating the
// document against the catalog schema first. Duplicate IDs are rejected.
func LoadCatalog(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read badge catalog: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse badge catalog: %w", err)
	}

	compiled, err := compileCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("badge catalog failed validation: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode badge catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Badges))
	for _, d := range file.Badges {
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate badge ID %q in catalog", d.ID)
		}
		seen[d.ID] = true
	}
	return file.Badges, nil
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://badge-catalog.json", defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://badge-catalog.json")
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}
