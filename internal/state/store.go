// Package state persists named precision models in SQLite so a project can
// pin the grid its pipelines were built against and retrieve it later.
//
// A stored row keeps the model type by name and the scale/grid-size pair by
// value. Loading a row resolves the type name back to the canonical
// geom.Type constant and rebuilds the model through the public constructors,
// so identity comparisons against the well-known constants still hold after
// a round-trip.
package state

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// StoredModel is a named precision model as persisted in the store.
type StoredModel struct {
	ID        string
	Name      string
	ModelType string
	Scale     float64
	GridSize  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrecisionModel rebuilds the precision model from the stored row.
func (m *StoredModel) PrecisionModel() (geom.PrecisionModel, error) {
	typ, ok := geom.ParseType(m.ModelType)
	if !ok {
		return geom.PrecisionModel{}, fmt.Errorf("stored model %q has unknown type %q", m.Name, m.ModelType)
	}
	if typ != geom.TypeFixed {
		return geom.NewTypedPrecisionModel(typ), nil
	}
	// An explicit grid size takes precedence over the scale-derived grid,
	// matching the construction-time selection.
	if m.GridSize != 0 {
		return geom.NewFixedPrecisionModel(-m.GridSize)
	}
	return geom.NewFixedPrecisionModel(m.Scale)
}

// Store is the persistence interface for named precision models.
type Store interface {
	Open(path string) error
	Close() error
	Migrate() error

	SaveModel(name string, pm geom.PrecisionModel) (*StoredModel, error)
	GetModel(name string) (*StoredModel, error)
	ListModels() ([]*StoredModel, error)
	DeleteModel(name string) error
}
