// Package catalog holds the static registry of site criteria: identifier,
// display name, optimization direction, survey source, and unit. Pure data —
// lookup only, no defaults for unknown ids.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heliogrid/siterank/internal/mcda"
)

// Definition describes one criterion available for analysis.
type Definition struct {
	ID        string         `yaml:"id" json:"id"`
	Name      string         `yaml:"name" json:"name"`
	Direction mcda.Direction `yaml:"direction" json:"direction"`
	Source    string         `yaml:"source" json:"source"`
	Unit      string         `yaml:"unit" json:"unit"`
}

// Catalog is an immutable criterion registry. Build it once at startup; it is
// safe for concurrent lookups.
type Catalog struct {
	byID  map[string]Definition
	order []string
}

// New builds a catalog from the given definitions. Duplicate ids and invalid
// directions are rejected at construction rather than checked at each use.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("criterion with empty id")
		}
		if !d.Direction.Valid() {
			return nil, fmt.Errorf("criterion %s: invalid direction %q", d.ID, d.Direction)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate criterion id: %s", d.ID)
		}
		c.byID[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c, nil
}

// Load reads criterion definitions from a YAML file and appends them to the
// built-in set, so deployments can extend the catalog without a rebuild.
func Load(path string) (*Catalog, error) {
	defs := builtinDefinitions()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		var file struct {
			Criteria []Definition `yaml:"criteria"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		defs = append(defs, file.Criteria...)
	}
	return New(defs)
}

// Default returns the built-in solar-PV planning catalog.
func Default() *Catalog {
	c, err := New(builtinDefinitions())
	if err != nil {
		panic(err) // built-in definitions are static; a failure here is a bug
	}
	return c
}

// Lookup returns the definition for id. The boolean reports membership;
// absence is a validation error upstream, never a silent default.
func (c *Catalog) Lookup(id string) (mcda.CriterionInfo, bool) {
	d, ok := c.byID[id]
	if !ok {
		return mcda.CriterionInfo{}, false
	}
	return mcda.CriterionInfo{
		Name:      d.Name,
		Direction: d.Direction,
		Unit:      d.Unit,
		Source:    d.Source,
	}, true
}

// List returns all definitions in registration order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func builtinDefinitions() []Definition {
	return []Definition{
		{ID: "irradiance_kwh_m2", Name: "Annual solar irradiance", Direction: mcda.Benefit, Source: "survey", Unit: "kWh/m²/yr"},
		{ID: "roof_area_m2", Name: "Usable roof area", Direction: mcda.Benefit, Source: "survey", Unit: "m²"},
		{ID: "capacity_kw", Name: "Installable capacity", Direction: mcda.Benefit, Source: "derived", Unit: "kW"},
		{ID: "cost_usd", Name: "Installation cost", Direction: mcda.Cost, Source: "estimate", Unit: "USD"},
		{ID: "grid_distance_m", Name: "Distance to grid connection", Direction: mcda.Cost, Source: "survey", Unit: "m"},
		{ID: "shading_ratio", Name: "Shading ratio", Direction: mcda.Cost, Source: "survey", Unit: "ratio"},
		{ID: "annual_demand_kwh", Name: "Annual energy demand", Direction: mcda.Benefit, Source: "billing", Unit: "kWh/yr"},
		{ID: "roof_condition", Name: "Roof condition score", Direction: mcda.Benefit, Source: "survey", Unit: "score"},
	}
}
