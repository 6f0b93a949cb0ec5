package services

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"componentcreator/catalog"
)

// ComponentTypes lists the component types offered as filter options.
var ComponentTypes = []string{
	"External walls",
	"Internal walls",
	"Partition walls",
	"Slabs",
	"Roofs",
}

// CoreMaterials lists the core materials offered as filter options.
var CoreMaterials = []string{
	"Mass Timber",
	"Panel construction",
	"Clay brick",
	"Calcium silicate brick",
	"Concrete",
}

// Filter selects components by type and core material. An empty selection
// means every option is ticked.
type Filter struct {
	Types     []string `json:"type"`
	Materials []string `json:"material"`
}

// ParseFilter reads repeated "type" and "material" query parameters.
func ParseFilter(q url.Values) (Filter, error) {
	f := Filter{
		Types:     q["type"],
		Materials: q["material"],
	}
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Types, validation.Each(validation.In(toAny(ComponentTypes)...))),
		validation.Field(&f.Materials, validation.Each(validation.In(toAny(CoreMaterials)...))),
	)
	if err != nil {
		return Filter{}, err
	}
	return f, nil
}

// FilterComponents returns the names whose type and material are both
// selected, in table order. Values outside the known options never match.
func FilterComponents(l catalog.Listing, f Filter) []string {
	types := selection(f.Types, ComponentTypes)
	materials := selection(f.Materials, CoreMaterials)

	names := []string{}
	for i, name := range l.Names {
		if types[l.Types[i]] && materials[l.Materials[i]] {
			names = append(names, name)
		}
	}
	return names
}

func selection(selected, options []string) map[string]bool {
	known := make(map[string]bool, len(options))
	for _, o := range options {
		known[o] = true
	}
	if len(selected) == 0 {
		return known
	}
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		if known[s] {
			set[s] = true
		}
	}
	return set
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
