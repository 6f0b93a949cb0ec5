package handlers

import (
	"net/http"
	"testing"

	"componentcreator/catalog"
	"componentcreator/testhelpers"
)

func TestHandleFilters(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(t, HandleFilters(d), http.MethodGet, "/catalog/filters", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "External walls", "Partition walls", "Calcium silicate brick")
}

func TestHandleListComponents(t *testing.T) {
	d := newTestDeps(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all", "/catalog/components", []string{"AW-MT-01", "IW-CB-02", "TRD-tr-HBV-GKL45-si", "DA-CO-04"}},
		{"by type", "/catalog/components?type=Roofs", []string{"DA-CO-04"}},
		{"by material", "/catalog/components?material=Mass+Timber&type=Slabs", []string{"TRD-tr-HBV-GKL45-si"}},
		{"none", "/catalog/components?type=Partition+walls", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, HandleListComponents(d), http.MethodGet, tt.target, "", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
			}

			var body struct {
				Components []ComponentSummary `json:"components"`
				Count      int                `json:"count"`
			}
			decode(t, rec, &body)

			if body.Count != len(tt.want) || len(body.Components) != len(tt.want) {
				t.Fatalf("got %d components, want %d: %+v", len(body.Components), len(tt.want), body.Components)
			}
			for i, name := range tt.want {
				if body.Components[i].Name != name {
					t.Errorf("component %d = %q, want %q", i, body.Components[i].Name, name)
				}
			}
		})
	}
}

func TestHandleListComponents_InvalidFilter(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(t, HandleListComponents(d), http.MethodGet, "/catalog/components?type=Bridges", "", nil)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body struct {
		Message string         `json:"message"`
		Code    int            `json:"code"`
		Errors  map[string]any `json:"errors"`
	}
	decode(t, rec, &body)
	if body.Code != http.StatusUnprocessableEntity || body.Message != "validation failed" {
		t.Errorf("body = %+v", body)
	}
	if _, ok := body.Errors["type"]; !ok {
		t.Errorf("errors = %v, want a type entry", body.Errors)
	}
}

func TestHandleGetComponent(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(t, HandleGetComponent(d), http.MethodGet, "/catalog/components/AW-MT-01", "AW-MT-01", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var c catalog.Component
	decode(t, rec, &c)
	if c.Name != "AW-MT-01" || c.Type != "External walls" || c.FireProofClass != "REI 90" {
		t.Errorf("component = %+v", c)
	}
}

func TestHandleGetComponent_NotFound(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(t, HandleGetComponent(d), http.MethodGet, "/catalog/components/nope", "nope", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body ErrorResponse
	decode(t, rec, &body)
	if body.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", body.Code)
	}
	testhelpers.AssertBodyContains(t, body.Message, `component "nope" not found`)
}

func TestHandleComponentProperties(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(t, HandleComponentProperties(d), http.MethodGet, "/catalog/components/DA-CO-04/properties", "DA-CO-04", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Component  string            `json:"component"`
		Columns    []string          `json:"columns"`
		Properties map[string]string `json:"properties"`
	}
	decode(t, rec, &body)

	if body.Component != "DA-CO-04" {
		t.Errorf("component = %q", body.Component)
	}
	if len(body.Columns) != 12 {
		t.Errorf("got %d columns, want 12", len(body.Columns))
	}
	if body.Properties["Fire proof class"] != "REI 120" {
		t.Errorf("Fire proof class = %q, want REI 120", body.Properties["Fire proof class"])
	}
	if body.Properties["Cost [€/m²]"] != catalog.PlaceholderMetric {
		t.Errorf("Cost = %q, want placeholder", body.Properties["Cost [€/m²]"])
	}
}
