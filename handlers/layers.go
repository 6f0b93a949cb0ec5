package handlers

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"componentcreator/services"
)

// LayerView is a configured layer with its thickness labels.
type LayerView struct {
	services.ConfiguredLayer
	Range         string `json:"range"`
	ThicknessText string `json:"thickness_text"`
}

// LayersResponse describes a component's layers, default or customised.
type LayersResponse struct {
	Component      string      `json:"component"`
	Layers         []LayerView `json:"layers"`
	TotalThickness float64     `json:"total_thickness"`
	TotalText      string      `json:"total_text"`
}

// LayersRequest carries thickness overrides for a custom component.
type LayersRequest struct {
	Layers []services.LayerSetting `json:"layers"`
}

func newLayersResponse(c services.CustomComponent) LayersResponse {
	resp := LayersResponse{
		Component:      c.Base,
		Layers:         make([]LayerView, len(c.Layers)),
		TotalThickness: c.TotalThickness,
		TotalText:      services.FormatThickness(c.TotalThickness),
	}
	for i, l := range c.Layers {
		resp.Layers[i] = LayerView{
			ConfiguredLayer: l,
			Range:           services.FormatRange(l.MinThickness, l.MaxThickness),
			ThicknessText:   services.FormatThickness(l.Thickness),
		}
	}
	return resp
}

// configure resolves the named component and applies settings. A name with a
// BOM entry resolves even when the overview sheet lacks it; a name in
// neither table is not found.
func configure(d *Deps, name string, settings []services.LayerSetting) (services.CustomComponent, error) {
	if _, inBOM := d.Catalog.Children(name); !inBOM {
		if _, err := d.Catalog.GetComponent(name); err != nil {
			return services.CustomComponent{}, err
		}
	}
	layers, err := d.Resolver.Resolve(name)
	if err != nil {
		return services.CustomComponent{}, err
	}
	return services.ConfigureLayers(name, layers, settings)
}

func bindLayers(e *core.RequestEvent) (LayersRequest, error) {
	var req LayersRequest
	if err := e.BindBody(&req); err != nil {
		return req, badRequest("invalid layer settings: %v", err)
	}
	return req, nil
}

// HandleGetLayers returns the default layers of a component or BOM entry.
// Overview components without a BOM entry have no layers.
func HandleGetLayers(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "resolve_bom"

		custom, err := configure(d, e.Request.PathValue("name"), nil)
		if err != nil {
			return respondError(d, e, op, err)
		}
		return respondOK(e, op, newLayersResponse(custom))
	}
}

// HandleConfigureLayers applies thickness overrides and returns the custom
// component.
func HandleConfigureLayers(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "configure_layers"

		req, err := bindLayers(e)
		if err != nil {
			return respondError(d, e, op, err)
		}
		custom, err := configure(d, e.Request.PathValue("name"), req.Layers)
		if err != nil {
			return respondError(d, e, op, err)
		}
		return respondOK(e, op, newLayersResponse(custom))
	}
}

// HandleExportLayers downloads a configured custom component as Excel, or as
// PDF with ?format=pdf.
func HandleExportLayers(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "export_layers"

		req, err := bindLayers(e)
		if err != nil {
			return respondError(d, e, op, err)
		}
		name := e.Request.PathValue("name")
		custom, err := configure(d, name, req.Layers)
		if err != nil {
			return respondError(d, e, op, err)
		}

		data := services.LayersExport{
			Title:       name + " (custom)",
			CreatedDate: d.exportDate(),
			Component:   custom,
		}

		format := strings.ToLower(e.Request.URL.Query().Get("format"))
		var (
			body        []byte
			contentType string
			ext         string
		)
		switch format {
		case "", "excel", "xlsx":
			body, err = services.GenerateLayersExcel(data)
			contentType, ext = xlsxContentType, "xlsx"
		case "pdf":
			body, err = services.GenerateLayersPDF(data)
			contentType, ext = "application/pdf", "pdf"
		default:
			return respondError(d, e, op, badRequest("unsupported export format %q", format))
		}
		if err != nil {
			return respondError(d, e, op, fmt.Errorf("generate %s: %w", ext, err))
		}

		filename := fmt.Sprintf("Component_%s_custom_%d.%s", sanitizeFilename(name), d.Now().Year(), ext)
		return sendFile(e, op, contentType, filename, body)
	}
}
