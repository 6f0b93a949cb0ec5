package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// HandleHealth reports the loaded workbook's size.
func HandleHealth(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return respondOK(e, "health", map[string]any{
			"status":  "ok",
			"catalog": d.Catalog.Stats(),
		})
	}
}
