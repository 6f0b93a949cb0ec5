package services

import (
	"fmt"
	"sync"

	"componentcreator/catalog"
)

// ResolvedLayer is a direct BOM layer joined with its material.
type ResolvedLayer struct {
	Position     int     `json:"position"` // 1-based, BOM order
	Name         string  `json:"name"`     // disambiguated display name
	MaterialID   string  `json:"material_id"`
	MinThickness float64 `json:"min_thickness"`
	MaxThickness float64 `json:"max_thickness"`
	Thickness    float64 `json:"thickness"`
}

// BOMResolver turns a component name into its ordered material layers.
// Results are memoised per name; the store snapshot never changes.
type BOMResolver struct {
	store *catalog.Store

	mu    sync.Mutex
	cache map[string][]ResolvedLayer
}

// NewBOMResolver returns a resolver over a loaded store.
func NewBOMResolver(store *catalog.Store) *BOMResolver {
	return &BOMResolver{
		store: store,
		cache: make(map[string][]ResolvedLayer),
	}
}

// Resolve returns the direct layers of the named component. A name without a
// BOM entry, or an entry without level-1 rows, yields an empty slice. A layer
// whose material ID is unknown fails with *catalog.DataIntegrityError.
func (r *BOMResolver) Resolve(name string) ([]ResolvedLayer, error) {
	r.mu.Lock()
	cached, ok := r.cache[name]
	r.mu.Unlock()
	if ok {
		return append([]ResolvedLayer{}, cached...), nil
	}

	layers, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[name] = layers
	r.mu.Unlock()

	return append([]ResolvedLayer{}, layers...), nil
}

func (r *BOMResolver) resolve(name string) ([]ResolvedLayer, error) {
	rows, ok := r.store.Children(name)
	if !ok || len(rows) == 0 {
		return []ResolvedLayer{}, nil
	}

	layers := make([]ResolvedLayer, 0, len(rows))
	names := make([]string, 0, len(rows))
	for i, row := range rows {
		m, ok := r.store.Material(row.MaterialID)
		if !ok {
			return nil, fmt.Errorf("resolve %q: %w", name, &catalog.DataIntegrityError{
				Component:  name,
				MaterialID: row.MaterialID,
				Row:        row.Row,
			})
		}
		layers = append(layers, ResolvedLayer{
			Position:     i + 1,
			MaterialID:   m.ID,
			MinThickness: m.MinThickness,
			MaxThickness: m.MaxThickness,
			Thickness:    row.Thickness,
		})
		names = append(names, m.Name)
	}

	for i, n := range DisambiguateNames(names) {
		layers[i].Name = n
	}
	return layers, nil
}

// DisambiguateNames makes repeated names unique. A name that occurs once is
// left alone; every occurrence of a repeated name, the first included, gets a
// two-digit 1-based counter in encounter order:
//
//	[Plywood Plywood Concrete Plywood] -> [Plywood 01, Plywood 02, Concrete, Plywood 03]
func DisambiguateNames(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}

	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		if counts[n] < 2 {
			out[i] = n
			continue
		}
		seen[n]++
		out[i] = fmt.Sprintf("%s %02d", n, seen[n])
	}
	return out
}
