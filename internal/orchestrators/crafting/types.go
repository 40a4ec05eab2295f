package crafting

import (
	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
)

// ListRecipesInput defines the request for building the visible catalog
type ListRecipesInput struct {
	PartyID string
}

// ListRecipesOutput defines the response for building the visible catalog
type ListRecipesOutput struct {
	Entries []entities.CatalogEntry
}

// GetRecipeInput defines the request for the recipe detail view
type GetRecipeInput struct {
	PartyID string
	Recipe  entities.Recipe
}

// GetRecipeOutput defines the response for the recipe detail view
type GetRecipeOutput struct {
	Detail Detail
}

// EvaluateRecipeInput defines the request for a craftability check
type EvaluateRecipeInput struct {
	PartyID string
	Recipe  entities.Recipe
}

// EvaluateRecipeOutput defines the response for a craftability check
type EvaluateRecipeOutput struct {
	Verdict Verdict
}

// CraftItemInput defines the request for executing a craft
type CraftItemInput struct {
	PartyID string
	Recipe  entities.Recipe
}

// CraftItemOutput defines the response for executing a craft
type CraftItemOutput struct {
	Outcome  Outcome
	Snapshot entities.Snapshot
}

// ListCraftHistoryInput defines the request for recent craft history
type ListCraftHistoryInput struct {
	PartyID string
	Limit   int
}

// ListCraftHistoryOutput defines the response for recent craft history
type ListCraftHistoryOutput struct {
	Entries []*craftlog.Entry
}

// CheckTargetInput defines the request for a targetability check
type CheckTargetInput struct {
	Ref entities.Ref
	Tag string
}

// CheckTargetOutput defines the response for a targetability check
type CheckTargetOutput struct {
	Targetable bool
}

// Verdict is the evaluator's answer for one recipe
type Verdict struct {
	Craftable bool   `json:"craftable"`
	Reason    string `json:"reason,omitempty"`
}

// Outcome is the executor's answer for one craft attempt
type Outcome struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// MaterialLine is one ingredient row of the detail view
type MaterialLine struct {
	Ref      entities.Ref `json:"ref"`
	Name     string       `json:"name"`
	Required int          `json:"required"`
	Held     int          `json:"held"`
}

// RequirementLine is the gate row of the detail view. The gate is checked,
// never consumed.
type RequirementLine struct {
	Ref  entities.Ref `json:"ref"`
	Name string       `json:"name"`
	Held bool         `json:"held"`
}

// Detail carries everything a detail pane renders for one recipe
type Detail struct {
	Recipe      entities.Recipe  `json:"recipe"`
	ResultName  string           `json:"result_name"`
	Description string           `json:"description,omitempty"`
	Materials   []MaterialLine   `json:"materials"`
	Requirement *RequirementLine `json:"requirement,omitempty"`
	Cost        int              `json:"cost"`
	Balance     int              `json:"balance"`
	Verdict     Verdict          `json:"verdict"`
}
