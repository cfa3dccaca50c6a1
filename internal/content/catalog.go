// Package content supplies read-only reference data about learning
// units: what kind of activity a unit is, how hard it is, and which
// skills it exercises. The progression engine never mutates it.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/questline-dev/questline/internal/xp"
)

// Unit describes a single learning unit from the content catalog.
type Unit struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Type       xp.ContentType `json:"type"`
	Difficulty xp.Difficulty `json:"difficulty"`
	Skills     []string      `json:"skills"`

	// BaseXPOverride replaces the content type's default base XP when
	// set. Zero means "use the default".
	BaseXPOverride int `json:"base_xp,omitempty"`
}

// BaseXP returns the unit's base XP, honoring any override.
func (u *Unit) BaseXP() int {
	if u.BaseXPOverride > 0 {
		return u.BaseXPOverride
	}
	return u.Type.BaseXP()
}

// Catalog is an immutable index of units by ID.
type Catalog struct {
	units map[string]*Unit
}

// NewCatalog builds a catalog from units, rejecting duplicate IDs.
func NewCatalog(units []Unit) (*Catalog, error) {
	index := make(map[string]*Unit, len(units))
	for i := range units {
		u := units[i]
		if _, dup := index[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit ID %q in catalog", u.ID)
		}
		index[u.ID] = &u
	}
	return &Catalog{units: index}, nil
}

// Unit returns the unit with the given ID, or nil if unknown.
func (c *Catalog) Unit(id string) *Unit {
	return c.units[id]
}

// Len returns the number of units in the catalog.
func (c *Catalog) Len() int {
	return len(c.units)
}

type catalogFile struct {
	Units []Unit `json:"units"`
}

// Load reads and validates a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content catalog: %w", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw JSON, validating against the
// catalog schema first.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse content catalog: %w", err)
	}

	compiled, err := compiledCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("content catalog failed validation: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode content catalog: %w", err)
	}
	return NewCatalog(file.Units)
}
