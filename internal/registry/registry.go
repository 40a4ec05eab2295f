// Package registry provides read-only access to the entity definition
// tables the crafting engine scans: consumables, weapons, and armor. The
// runtime loads them from author-maintained JSON files; tests and tooling
// can build static registries in memory.
package registry

//go:generate mockgen -destination=mock/mock_registry.go -package=registrymock github.com/forgebound/crafting-api/internal/registry Registry

import (
	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
)

// Registry is the lookup surface the crafting engine consumes
type Registry interface {
	// Lookup resolves one entity by kind and id. Unknown entities return
	// a NotFound error; callers scanning annotations treat that as "drop
	// the recipe", never as a hard failure.
	Lookup(kind entities.Kind, id int) (entities.Entity, error)

	// All returns every entity of a kind in declaration order
	All(kind entities.Kind) []entities.Entity

	// Kinds returns the kinds in the fixed catalog scan order
	Kinds() []entities.Kind
}

// store backs both the file-loaded and the static registries
type store struct {
	tables map[entities.Kind][]entities.Entity
	index  map[entities.Ref]entities.Entity
}

var _ Registry = (*store)(nil)

func newStore(tables map[entities.Kind][]entities.Entity) (*store, error) {
	s := &store{
		tables: make(map[entities.Kind][]entities.Entity, len(tables)),
		index:  make(map[entities.Ref]entities.Entity),
	}

	for _, kind := range entities.Kinds() {
		for _, entity := range tables[kind] {
			if !entity.Ref.Valid() {
				return nil, errors.InvalidArgumentf("entity %q has invalid ref %s", entity.Name, entity.Ref)
			}
			if entity.Ref.Kind != kind {
				return nil, errors.InvalidArgumentf("entity %s declared under kind %s", entity.Ref, kind)
			}
			if _, exists := s.index[entity.Ref]; exists {
				return nil, errors.AlreadyExistsf("duplicate entity id %d in %s registry", entity.Ref.ID, kind)
			}
			s.index[entity.Ref] = entity
			s.tables[kind] = append(s.tables[kind], entity)
		}
	}

	return s, nil
}

// Lookup resolves one entity by kind and id
func (s *store) Lookup(kind entities.Kind, id int) (entities.Entity, error) {
	entity, ok := s.index[entities.NewRef(kind, id)]
	if !ok {
		return entities.Entity{}, errors.NotFoundf("entity %s:%d not defined", kind, id)
	}
	return entity, nil
}

// All returns every entity of a kind in declaration order
func (s *store) All(kind entities.Kind) []entities.Entity {
	table := s.tables[kind]
	out := make([]entities.Entity, len(table))
	copy(out, table)
	return out
}

// Kinds returns the kinds in the fixed catalog scan order
func (s *store) Kinds() []entities.Kind {
	return entities.Kinds()
}

// NewStatic builds an in-memory registry from the given tables, preserving
// slice order as declaration order. Used by tests and the demo tooling.
func NewStatic(tables map[entities.Kind][]entities.Entity) (Registry, error) {
	return newStore(tables)
}
