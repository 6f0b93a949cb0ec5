package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"componentcreator/services"
)

// ComponentSummary is one entry of the component list.
type ComponentSummary struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Material string `json:"material"`
}

// HandleFilters returns the filter options.
func HandleFilters(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return respondOK(e, "filters", map[string][]string{
			"types":     services.ComponentTypes,
			"materials": services.CoreMaterials,
		})
	}
}

// HandleListComponents returns the components matching the repeated "type"
// and "material" query parameters. Without parameters every component of a
// known type and material is listed.
func HandleListComponents(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "list_components"

		filter, err := services.ParseFilter(e.Request.URL.Query())
		if err != nil {
			return respondError(d, e, op, err)
		}

		listing := d.Catalog.ListComponents()
		index := make(map[string]int, len(listing.Names))
		for i, n := range listing.Names {
			index[n] = i
		}

		names := services.FilterComponents(listing, filter)
		items := make([]ComponentSummary, 0, len(names))
		for _, n := range names {
			i := index[n]
			items = append(items, ComponentSummary{
				Name:     n,
				Type:     listing.Types[i],
				Material: listing.Materials[i],
			})
		}

		return respondOK(e, op, map[string]any{
			"components": items,
			"count":      len(items),
		})
	}
}

// HandleGetComponent returns the overview row of one component.
func HandleGetComponent(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "get_component"

		c, err := d.Catalog.GetComponent(e.Request.PathValue("name"))
		if err != nil {
			return respondError(d, e, op, err)
		}
		return respondOK(e, op, c)
	}
}

// HandleComponentProperties returns the comparison record of one component.
func HandleComponentProperties(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "project_one"

		rec, err := d.Projector.ProjectOne(e.Request.PathValue("name"))
		if err != nil {
			return respondError(d, e, op, err)
		}

		props := make(map[string]string, len(services.PropertyColumns))
		for i, col := range services.PropertyColumns {
			props[col] = rec.Values[i]
		}
		return respondOK(e, op, map[string]any{
			"component":  rec.Component,
			"columns":    services.PropertyColumns,
			"values":     rec.Values,
			"properties": props,
		})
	}
}
