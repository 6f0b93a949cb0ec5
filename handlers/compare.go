package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// HandleCompare returns the comparison table of the components named by the
// repeated "name" query parameter, in request order.
func HandleCompare(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "project_many"

		table, err := d.Projector.ProjectMany(e.Request.URL.Query()["name"])
		if err != nil {
			return respondError(d, e, op, err)
		}
		return respondOK(e, op, table)
	}
}
