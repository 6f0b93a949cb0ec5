package handlers

import (
	"net/http"
	"testing"

	"componentcreator/catalog"
)

func TestHandleHealth(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(t, HandleHealth(d), http.MethodGet, "/catalog/health", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status  string        `json:"status"`
		Catalog catalog.Stats `json:"catalog"`
	}
	decode(t, rec, &body)

	if body.Status != "ok" {
		t.Errorf("status = %q", body.Status)
	}
	if body.Catalog.Components != 5 || body.Catalog.BOMRows != 10 || body.Catalog.Materials != 5 {
		t.Errorf("stats = %+v", body.Catalog)
	}
}
