package handlers

import (
	"time"

	"go.uber.org/zap"

	"componentcreator/catalog"
	"componentcreator/services"
)

// Deps carries the loaded catalog and the services built on it into the
// handler factories.
type Deps struct {
	Catalog   *catalog.Store
	Resolver  *services.BOMResolver
	Projector *services.Projector
	Log       *zap.Logger

	// Now stamps exports; tests pin it.
	Now func() time.Time
}

// NewDeps wires the services over a loaded store.
func NewDeps(store *catalog.Store, log *zap.Logger) *Deps {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deps{
		Catalog:   store,
		Resolver:  services.NewBOMResolver(store),
		Projector: services.NewProjector(store),
		Log:       log,
		Now:       time.Now,
	}
}

func (d *Deps) exportDate() string {
	return d.Now().Format("02 Jan 2006")
}
