package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forgebound/crafting-api/internal/errors"
)

// Ref identifies an entity definition by kind and numeric id.
// Equality is by value; refs are used as map keys and storage fields.
type Ref struct {
	Kind Kind `json:"kind"`
	ID   int  `json:"id"`
}

// NewRef creates a ref for the given kind and id
func NewRef(kind Kind, id int) Ref {
	return Ref{Kind: kind, ID: id}
}

// String renders the ref in its canonical key form, e.g. "consumable:8"
func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// Valid reports whether the ref names a known kind and a positive id
func (r Ref) Valid() bool {
	return r.Kind.Valid() && r.ID > 0
}

// ParseRef parses the canonical "kind:id" key form back into a Ref
func ParseRef(s string) (Ref, error) {
	kindPart, idPart, ok := strings.Cut(s, ":")
	if !ok {
		return Ref{}, errors.InvalidArgumentf("malformed entity ref %q", s)
	}

	kind, err := ParseKind(kindPart)
	if err != nil {
		return Ref{}, err
	}

	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return Ref{}, errors.InvalidArgumentf("malformed entity id in ref %q", s)
	}

	return Ref{Kind: kind, ID: id}, nil
}

// Material is one ingredient line of a recipe
type Material struct {
	Ref      Ref `json:"ref"`
	Quantity int `json:"quantity"`
}

// Recipe is a parsed crafting rule: consume the materials and the cost,
// produce one unit of the result. The requirement gates the recipe but is
// never consumed.
type Recipe struct {
	Result      Ref        `json:"result"`
	Materials   []Material `json:"materials"`
	Description string     `json:"description,omitempty"`
	Requirement *Ref       `json:"requirement,omitempty"`
	Cost        int        `json:"cost"`
}

// Validate checks the recipe invariants
func (r *Recipe) Validate() error {
	vb := errors.NewValidationBuilder()

	if !r.Result.Valid() {
		vb.InvalidField("result", "must name a known kind and a positive id")
	}
	if len(r.Materials) == 0 {
		vb.Field("materials", "must not be empty")
	}
	for i, m := range r.Materials {
		if !m.Ref.Valid() {
			vb.Field(fmt.Sprintf("materials[%d].ref", i), "must name a known kind and a positive id")
		}
		if m.Quantity < 1 {
			vb.Field(fmt.Sprintf("materials[%d].quantity", i), "must be at least 1")
		}
	}
	if r.Requirement != nil && !r.Requirement.Valid() {
		vb.InvalidField("requirement", "must name a known kind and a positive id")
	}
	if r.Cost < 0 {
		vb.Field("cost", "must not be negative")
	}

	return vb.Build()
}

// Refs returns every entity reference the recipe mentions, in declaration
// order: result, materials, then the requirement if present. Used by the
// catalog to resolve the whole recipe before listing it.
func (r *Recipe) Refs() []Ref {
	refs := make([]Ref, 0, len(r.Materials)+2)
	refs = append(refs, r.Result)
	for _, m := range r.Materials {
		refs = append(refs, m.Ref)
	}
	if r.Requirement != nil {
		refs = append(refs, *r.Requirement)
	}
	return refs
}
