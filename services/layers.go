package services

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// LayerSetting overrides the thickness of one layer, addressed by position.
type LayerSetting struct {
	Position  int     `json:"position"`
	Thickness float64 `json:"thickness"`
}

// ConfiguredLayer is a resolved layer with the thickness chosen for a custom
// component. Default keeps the BOM thickness for reference.
type ConfiguredLayer struct {
	ResolvedLayer
	Default float64 `json:"default"`
	Custom  bool    `json:"custom"`
}

// CustomComponent is a user-tuned variant of a catalog component.
type CustomComponent struct {
	Base           string            `json:"base"`
	Layers         []ConfiguredLayer `json:"layers"`
	TotalThickness float64           `json:"total_thickness"`
}

// ConfigureLayers applies thickness settings to the resolved layers of base.
// Layers without a setting keep their BOM thickness. Each setting must name
// an existing position once, and its thickness must lie within the
// material's bounds. Violations are returned as validation.Errors keyed by
// layer name.
func ConfigureLayers(base string, layers []ResolvedLayer, settings []LayerSetting) (CustomComponent, error) {
	custom := CustomComponent{
		Base:   base,
		Layers: make([]ConfiguredLayer, len(layers)),
	}
	for i, l := range layers {
		custom.Layers[i] = ConfiguredLayer{ResolvedLayer: l, Default: l.Thickness}
	}

	errs := validation.Errors{}
	applied := make(map[int]bool, len(settings))
	for _, s := range settings {
		key := fmt.Sprintf("position %d", s.Position)
		if s.Position < 1 || s.Position > len(layers) {
			errs[key] = fmt.Errorf("no layer at position %d", s.Position)
			continue
		}
		if applied[s.Position] {
			errs[key] = fmt.Errorf("layer is configured more than once")
			continue
		}
		applied[s.Position] = true

		l := &custom.Layers[s.Position-1]
		// Min and Max skip zero values, so zero needs its own rule unless the
		// material allows it.
		rules := []validation.Rule{validation.Min(l.MinThickness), validation.Max(l.MaxThickness)}
		if l.MinThickness > 0 {
			rules = append([]validation.Rule{validation.Required.Error("must be greater than zero")}, rules...)
		}
		if err := validation.Validate(s.Thickness, rules...); err != nil {
			errs[l.Name] = err
			continue
		}
		l.Thickness = s.Thickness
		l.Custom = true
	}
	if err := errs.Filter(); err != nil {
		return CustomComponent{}, err
	}

	custom.TotalThickness = TotalThickness(custom.Layers)
	return custom, nil
}

// TotalThickness sums layer thicknesses without float drift, rounded to
// a tenth of a millimetre.
func TotalThickness(layers []ConfiguredLayer) float64 {
	total := decimal.Decimal{}
	for _, l := range layers {
		total = total.Add(decimal.NewFromFloat(l.Thickness))
	}
	return total.Round(4).InexactFloat64()
}
