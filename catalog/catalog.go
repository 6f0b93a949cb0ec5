// Package catalog loads the component workbook and serves read-only lookups
// over its overview, BOM and materials tables.
package catalog

import (
	"fmt"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/xuri/excelize/v2"
)

// Component is one row of the overview table.
type Component struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Material       string `json:"material"`
	BuildingClass  string `json:"building_class"`
	FireProofClass string `json:"fire_proof_class"`
	UValue         string `json:"u_value"`
	SoundProof1    string `json:"sound_proof_1"`
	SoundProof2    string `json:"sound_proof_2"`
	PreFabricated  string `json:"pre_fabricated"`
	Exposed        string `json:"exposed"`
	GWP            string `json:"gwp"`
	EmbodiedEnergy string `json:"embodied_energy"`
	Cost           string `json:"cost"`
}

// BOMRow is one node of the flat bill-of-materials table. Name is only set on
// top-level component rows; level 1 marks a direct layer of the preceding
// top-level row.
type BOMRow struct {
	Row        int     `json:"row"`
	Name       string  `json:"name,omitempty"`
	MaterialID string  `json:"material_id"`
	Level      int     `json:"level"`
	Thickness  float64 `json:"thickness"`
}

// Material is reusable reference data for a layer material.
type Material struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MinThickness float64 `json:"min_thickness"`
	MaxThickness float64 `json:"max_thickness"`
}

// Listing holds parallel sequences over all catalog rows in table order;
// index i refers to the same component in each slice.
type Listing struct {
	Names     []string `json:"names"`
	Types     []string `json:"types"`
	Materials []string `json:"materials"`
}

// Stats summarises a loaded workbook.
type Stats struct {
	Path       string    `json:"path"`
	Components int       `json:"components"`
	BOMRows    int       `json:"bom_rows"`
	Materials  int       `json:"materials"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// Store is an immutable snapshot of one workbook. Construct it with New and
// call Load once at startup, or use Open. All lookups are safe for concurrent
// use after Load returns.
type Store struct {
	path string

	once sync.Once
	err  error

	components []Component
	byName     map[string]int
	bom        []BOMRow
	children   map[string][]BOMRow
	materials  map[string]Material
	loadedAt   time.Time
}

// New returns an unloaded store for the workbook at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Open is New followed by Load.
func Open(path string) (*Store, error) {
	s := New(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the workbook location.
func (s *Store) Path() string { return s.path }

// Load parses the workbook. Only the first call reads the file; later calls
// return the first call's result.
func (s *Store) Load() error {
	s.once.Do(func() {
		if s.err = s.load(); s.err != nil {
			s.components, s.byName, s.bom, s.children, s.materials = nil, nil, nil, nil, nil
		}
	})
	return s.err
}

func (s *Store) load() error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return &LoadError{Path: s.path, Err: err}
	}
	defer f.Close()

	overview, err := readTable(f, s.path, OverviewSheet, overviewColumns)
	if err != nil {
		return err
	}
	bom, err := readTable(f, s.path, BOMSheet, bomColumns)
	if err != nil {
		return err
	}
	materials, err := readTable(f, s.path, MaterialsSheet, materialColumns)
	if err != nil {
		return err
	}

	if err := s.loadComponents(overview); err != nil {
		return err
	}
	if err := s.loadMaterials(materials); err != nil {
		return err
	}
	if err := s.loadBOM(bom); err != nil {
		return err
	}

	s.loadedAt = time.Now()
	return nil
}

func (s *Store) loadComponents(t *table) error {
	s.byName = make(map[string]int, len(t.rows))
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		name := t.cell(row, ColName)
		if name == "" {
			return &LoadError{Path: t.path, Sheet: t.sheet, Column: ColName, Row: sheetRow(i),
				Err: fmt.Errorf("component name is empty")}
		}
		if _, dup := s.byName[name]; dup {
			return &LoadError{Path: t.path, Sheet: t.sheet, Column: ColName, Row: sheetRow(i),
				Err: fmt.Errorf("duplicate component %q", name)}
		}

		c := Component{
			Name:           name,
			Type:           t.text(i, ColType),
			Material:       t.text(i, ColMaterial),
			BuildingClass:  t.text(i, ColBuildingClass),
			FireProofClass: t.text(i, ColFireProofClass),
			UValue:         t.text(i, ColUValue),
			SoundProof1:    t.text(i, ColSoundProof1),
			SoundProof2:    t.text(i, ColSoundProof2),
			PreFabricated:  t.text(i, ColPreFabricated),
			Exposed:        t.text(i, ColExposed),
			GWP:            metric(t, row, ColGWP),
			EmbodiedEnergy: metric(t, row, ColEmbodiedEnergy),
			Cost:           metric(t, row, ColCost),
		}
		s.byName[name] = len(s.components)
		s.components = append(s.components, c)
	}
	return nil
}

// metric reads an optional sustainability column, falling back to the
// placeholder when the column or the value is absent.
func metric(t *table, row []string, col string) string {
	if !t.has(col) {
		return PlaceholderMetric
	}
	if v := t.cell(row, col); v != "" {
		return v
	}
	return PlaceholderMetric
}

func (s *Store) loadMaterials(t *table) error {
	s.materials = make(map[string]Material, len(t.rows))
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		minT, err := t.number(row, i, ColMinThickness)
		if err != nil {
			return err
		}
		maxT, err := t.number(row, i, ColMaxThickness)
		if err != nil {
			return err
		}
		m := Material{
			ID:           t.cell(row, ColMaterialID),
			Name:         t.cell(row, ColName),
			MinThickness: minT,
			MaxThickness: maxT,
		}
		if err := validation.ValidateStruct(&m,
			validation.Field(&m.ID, validation.Required),
			validation.Field(&m.Name, validation.Required),
			validation.Field(&m.MinThickness, validation.Min(0.0)),
			validation.Field(&m.MaxThickness, validation.Min(m.MinThickness)),
		); err != nil {
			return &LoadError{Path: t.path, Sheet: t.sheet, Row: sheetRow(i), Err: err}
		}
		if _, dup := s.materials[m.ID]; dup {
			return &LoadError{Path: t.path, Sheet: t.sheet, Column: ColMaterialID, Row: sheetRow(i),
				Err: fmt.Errorf("duplicate material %q", m.ID)}
		}
		s.materials[m.ID] = m
	}
	return nil
}

// loadBOM keeps the flat table and groups each named top-level row with the
// contiguous level-1 rows that follow it. Grouping stops at the first row
// whose level is not 1. Level-1 rows may carry a name of their own; they are
// never entries.
func (s *Store) loadBOM(t *table) error {
	s.bom = make([]BOMRow, 0, len(t.rows))
	for i, row := range t.rows {
		level, err := t.integer(row, i, ColMaterialLevel)
		if err != nil {
			return err
		}
		thickness, err := t.number(row, i, ColThickness)
		if err != nil {
			return err
		}
		s.bom = append(s.bom, BOMRow{
			Row:        sheetRow(i),
			Name:       t.cell(row, ColName),
			MaterialID: t.cell(row, ColMaterialID),
			Level:      level,
			Thickness:  thickness,
		})
	}

	s.children = make(map[string][]BOMRow)
	for i, r := range s.bom {
		if r.Name == "" || r.Level == 1 {
			continue
		}
		if _, dup := s.children[r.Name]; dup {
			return &LoadError{Path: t.path, Sheet: t.sheet, Column: ColName, Row: r.Row,
				Err: fmt.Errorf("duplicate BOM entry %q", r.Name)}
		}
		layers := []BOMRow{}
		for j := i + 1; j < len(s.bom) && s.bom[j].Level == 1; j++ {
			layers = append(layers, s.bom[j])
		}
		s.children[r.Name] = layers
	}
	return nil
}

// GetComponent returns the overview row for name.
func (s *Store) GetComponent(name string) (Component, error) {
	idx, ok := s.byName[name]
	if !ok {
		return Component{}, &NotFoundError{Kind: "component", Key: name}
	}
	return s.components[idx], nil
}

// ListComponents returns names, types and materials of every catalog row.
func (s *Store) ListComponents() Listing {
	l := Listing{
		Names:     make([]string, len(s.components)),
		Types:     make([]string, len(s.components)),
		Materials: make([]string, len(s.components)),
	}
	for i, c := range s.components {
		l.Names[i] = c.Name
		l.Types[i] = c.Type
		l.Materials[i] = c.Material
	}
	return l
}

// Material looks up a material by ID.
func (s *Store) Material(id string) (Material, bool) {
	m, ok := s.materials[id]
	return m, ok
}

// Children returns the direct layer rows of a top-level BOM entry. The second
// result is false when the name has no BOM entry at all.
func (s *Store) Children(name string) ([]BOMRow, bool) {
	rows, ok := s.children[name]
	if !ok {
		return nil, false
	}
	return append([]BOMRow(nil), rows...), true
}

// Stats reports table sizes of the loaded snapshot.
func (s *Store) Stats() Stats {
	return Stats{
		Path:       s.path,
		Components: len(s.components),
		BOMRows:    len(s.bom),
		Materials:  len(s.materials),
		LoadedAt:   s.loadedAt,
	}
}
