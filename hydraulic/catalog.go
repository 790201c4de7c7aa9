package hydraulic

import (
	"fmt"
	"strings"
)

// Catalog is an immutable material registry. Build one with NewCatalog and
// share it freely; lookups never mutate it, so it is safe for concurrent use.
type Catalog struct {
	materials []Material
	index     map[string]int
}

// NewCatalog validates the given materials and builds the lookup index.
// Duplicate names (case-insensitive) are rejected.
func NewCatalog(materials []Material) (*Catalog, error) {
	c := &Catalog{
		materials: make([]Material, 0, len(materials)),
		index:     make(map[string]int, len(materials)),
	}
	for _, m := range materials {
		key := normalizeMaterialName(m.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: material with empty name", ErrInvalidGeometry)
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate material %q", ErrInvalidGeometry, m.Name)
		}
		switch m.Model {
		case ModelColebrook, "":
			if m.Roughness < 0 {
				return nil, fmt.Errorf("%w: material %q has negative roughness %g",
					ErrInvalidGeometry, m.Name, m.Roughness)
			}
			m.Model = ModelColebrook
		case ModelHazenWilliams:
			if m.HazenWilliamsC <= 0 {
				return nil, fmt.Errorf("%w: material %q needs a positive Hazen-Williams C, got %g",
					ErrInvalidGeometry, m.Name, m.HazenWilliamsC)
			}
		default:
			return nil, fmt.Errorf("%w: material %q has unknown friction model %q",
				ErrInvalidGeometry, m.Name, m.Model)
		}
		c.index[key] = len(c.materials)
		c.materials = append(c.materials, m)
	}
	return c, nil
}

// Lookup resolves a material by name, case-insensitively. Unknown names are
// an error, never a silent default.
func (c *Catalog) Lookup(name string) (Material, error) {
	i, ok := c.index[normalizeMaterialName(name)]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return c.materials[i], nil
}

// List returns a copy of the catalog contents in registration order.
func (c *Catalog) List() []Material {
	out := make([]Material, len(c.materials))
	copy(out, c.materials)
	return out
}

// Len reports how many materials the catalog holds.
func (c *Catalog) Len() int { return len(c.materials) }

func normalizeMaterialName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultMaterials is the built-in pipe catalog. Roughness values are in
// meters (e.g. PVC 0.0015 mm = 1.5e-6 m). Identifiers follow the commercial
// catalog the system was commissioned with.
func DefaultMaterials() []Material {
	return []Material{
		{Name: "pvc", Roughness: 1.5e-6, HazenWilliamsC: 150, Model: ModelColebrook, Description: "PVC / plastic, smooth"},
		{Name: "aco_novo", Roughness: 4.5e-5, HazenWilliamsC: 140, Model: ModelColebrook, Description: "new welded steel"},
		{Name: "aco_comercial", Roughness: 4.6e-5, HazenWilliamsC: 120, Model: ModelColebrook, Description: "commercial steel"},
		{Name: "ferro_fundido", Roughness: 2.6e-4, HazenWilliamsC: 130, Model: ModelColebrook, Description: "cast iron, uncoated"},
		{Name: "ferro_galvanizado", Roughness: 1.5e-4, HazenWilliamsC: 120, Model: ModelColebrook, Description: "galvanized iron"},
		{Name: "cimento_amianto", Roughness: 2.5e-5, HazenWilliamsC: 140, Model: ModelHazenWilliams, Description: "asbestos cement, C-based"},
	}
}
