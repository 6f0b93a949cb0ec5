// Package services resolves, projects, filters and exports catalog components.
package services

import (
	"fmt"

	"componentcreator/catalog"
)

// PropertyColumns are the comparison columns in display order.
var PropertyColumns = [12]string{
	"Type",
	"Core material",
	"Building class",
	"Fire proof class",
	"U-value",
	"Sound proof ¹",
	"Sound proof ²",
	"Pre-fabricated",
	"Finishing",
	"GWP [kg CO₂/m²]",
	"Embodied energy [MJ/m²]",
	"Cost [€/m²]",
}

// PropertyRecord is one component's comparison row. Values line up with
// PropertyColumns.
type PropertyRecord struct {
	Component string     `json:"component"`
	Values    [12]string `json:"values"`
}

// Get returns the value of a named column.
func (r PropertyRecord) Get(column string) (string, bool) {
	for i, c := range PropertyColumns {
		if c == column {
			return r.Values[i], true
		}
	}
	return "", false
}

// PropertyTable stacks records for side-by-side comparison.
type PropertyTable struct {
	Columns []string         `json:"columns"`
	Rows    []PropertyRecord `json:"rows"`
}

// Projector extracts comparison records from the catalog.
type Projector struct {
	store *catalog.Store
}

// NewProjector returns a projector over a loaded store.
func NewProjector(store *catalog.Store) *Projector {
	return &Projector{store: store}
}

// ProjectOne builds the record for a single component.
func (p *Projector) ProjectOne(name string) (PropertyRecord, error) {
	c, err := p.store.GetComponent(name)
	if err != nil {
		return PropertyRecord{}, fmt.Errorf("project %q: %w", name, err)
	}
	return PropertyRecord{
		Component: c.Name,
		Values: [12]string{
			c.Type,
			c.Material,
			c.BuildingClass,
			c.FireProofClass,
			c.UValue,
			c.SoundProof1,
			c.SoundProof2,
			c.PreFabricated,
			c.Exposed,
			c.GWP,
			c.EmbodiedEnergy,
			c.Cost,
		},
	}, nil
}

// ProjectMany builds one row per name in input order. An empty input gives a
// table with all columns and no rows.
func (p *Projector) ProjectMany(names []string) (PropertyTable, error) {
	table := PropertyTable{
		Columns: append([]string(nil), PropertyColumns[:]...),
		Rows:    make([]PropertyRecord, 0, len(names)),
	}
	for _, name := range names {
		rec, err := p.ProjectOne(name)
		if err != nil {
			return PropertyTable{}, err
		}
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}
