// Package crafting implements the crafting orchestrator: catalog building
// from annotated entity registries, craftability evaluation, and atomic
// craft execution against the party inventory.
package crafting

//go:generate mockgen -destination=mock/mock_service.go -package=craftingmock github.com/forgebound/crafting-api/internal/orchestrators/crafting Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/grammar"
	"github.com/forgebound/crafting-api/internal/registry"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
	"github.com/forgebound/crafting-api/internal/repositories/inventory"
)

const (
	// DefaultTargetTag marks entities the targeting system may act on
	DefaultTargetTag = "targetable"

	// Blocked-craft reasons, in evaluation priority order. The wording is
	// shown to players verbatim.
	reasonInvalidRecipe     = "invalid recipe"
	reasonNotEnoughFmt      = "not enough %s"
	reasonRequiresFmt       = "requires %s"
	reasonNotEnoughCurrency = "not enough currency"
	reasonCannotCraft       = "cannot craft this item"
)

// Service defines the interface for crafting operations
type Service interface {
	// ListRecipes builds the visible recipe catalog for a party
	ListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error)

	// GetRecipe assembles the detail view for one recipe
	GetRecipe(ctx context.Context, input *GetRecipeInput) (*GetRecipeOutput, error)

	// EvaluateRecipe answers whether a party can craft a recipe right now
	EvaluateRecipe(ctx context.Context, input *EvaluateRecipeInput) (*EvaluateRecipeOutput, error)

	// CraftItem executes a craft: evaluate, exchange atomically, record
	CraftItem(ctx context.Context, input *CraftItemInput) (*CraftItemOutput, error)

	// ListCraftHistory returns the party's recent crafts, newest first
	ListCraftHistory(ctx context.Context, input *ListCraftHistoryInput) (*ListCraftHistoryOutput, error)

	// CheckTarget answers whether an entity carries the target tag
	CheckTarget(ctx context.Context, input *CheckTargetInput) (*CheckTargetOutput, error)
}

// Config holds the dependencies for the crafting orchestrator
type Config struct {
	Registry      registry.Registry
	InventoryRepo inventory.Repository
	CraftLogRepo  craftlog.Repository

	// TargetTag overrides the tag CheckTarget looks for when the input
	// leaves it empty; empty means DefaultTargetTag
	TargetTag string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.CraftLogRepo == nil {
		vb.RequiredField("CraftLogRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	registry      registry.Registry
	inventoryRepo inventory.Repository
	craftLogRepo  craftlog.Repository
	targetTag     string
}

// NewOrchestrator creates a new crafting orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	targetTag := cfg.TargetTag
	if targetTag == "" {
		targetTag = DefaultTargetTag
	}

	return &orchestrator{
		registry:      cfg.Registry,
		inventoryRepo: cfg.InventoryRepo,
		craftLogRepo:  cfg.CraftLogRepo,
		targetTag:     targetTag,
	}, nil
}

// ListRecipes builds the visible catalog: scan every registry in the fixed
// kind order, parse every annotation, drop what does not resolve, hide
// recipes whose requirement the party does not hold, and attach a verdict
// to each surviving row. One snapshot backs the whole build.
func (o *orchestrator) ListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument("party ID is required")
	}

	snapshotOut, err := o.inventoryRepo.GetSnapshot(ctx, inventory.GetSnapshotInput{PartyID: input.PartyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inventory snapshot")
	}
	snapshot := snapshotOut.Snapshot

	entries := []entities.CatalogEntry{}
	for _, kind := range o.registry.Kinds() {
		for _, entity := range o.registry.All(kind) {
			if entity.Note == "" {
				continue
			}
			for _, recipe := range grammar.ParseAll(entity.Note) {
				if !o.resolvable(recipe) {
					continue
				}
				if recipe.Requirement != nil && !snapshot.Has(*recipe.Requirement) {
					continue
				}

				verdict := o.evaluate(recipe, snapshot)
				entries = append(entries, entities.CatalogEntry{
					Recipe:     recipe,
					ResultName: o.displayName(recipe.Result),
					Craftable:  verdict.Craftable,
					Reason:     verdict.Reason,
				})
			}
		}
	}

	slog.Info("Recipe catalog built",
		"party_id", input.PartyID,
		"entries", len(entries),
	)

	return &ListRecipesOutput{
		Entries: entries,
	}, nil
}

// GetRecipe assembles the detail view for one recipe against a fresh
// snapshot. Invalid recipes render with the invalid verdict rather than
// erroring, mirroring the evaluator.
func (o *orchestrator) GetRecipe(ctx context.Context, input *GetRecipeInput) (*GetRecipeOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument("party ID is required")
	}

	snapshotOut, err := o.inventoryRepo.GetSnapshot(ctx, inventory.GetSnapshotInput{PartyID: input.PartyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inventory snapshot")
	}
	snapshot := snapshotOut.Snapshot

	recipe := input.Recipe
	detail := Detail{
		Recipe:      recipe,
		ResultName:  o.displayName(recipe.Result),
		Description: recipe.Description,
		Materials:   make([]MaterialLine, 0, len(recipe.Materials)),
		Cost:        recipe.Cost,
		Balance:     snapshot.Currency,
		Verdict:     o.evaluate(recipe, snapshot),
	}
	for _, material := range recipe.Materials {
		detail.Materials = append(detail.Materials, MaterialLine{
			Ref:      material.Ref,
			Name:     o.displayName(material.Ref),
			Required: material.Quantity,
			Held:     snapshot.QuantityOf(material.Ref),
		})
	}
	if recipe.Requirement != nil {
		detail.Requirement = &RequirementLine{
			Ref:  *recipe.Requirement,
			Name: o.displayName(*recipe.Requirement),
			Held: snapshot.Has(*recipe.Requirement),
		}
	}

	return &GetRecipeOutput{
		Detail: detail,
	}, nil
}

// EvaluateRecipe answers craftability from one snapshot read. Evaluating
// twice without an inventory mutation gives the same verdict.
func (o *orchestrator) EvaluateRecipe(ctx context.Context, input *EvaluateRecipeInput) (*EvaluateRecipeOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument("party ID is required")
	}

	snapshotOut, err := o.inventoryRepo.GetSnapshot(ctx, inventory.GetSnapshotInput{PartyID: input.PartyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inventory snapshot")
	}

	return &EvaluateRecipeOutput{
		Verdict: o.evaluate(input.Recipe, snapshotOut.Snapshot),
	}, nil
}

// CraftItem evaluates the recipe and, if craftable, applies the exchange:
// consume every material, grant one result, spend the cost, together or
// not at all. The store re-verifies under its own lock, so losing a race
// to a concurrent mutation yields a blocked outcome, never a negative
// balance and never an error.
func (o *orchestrator) CraftItem(ctx context.Context, input *CraftItemInput) (*CraftItemOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument("party ID is required")
	}

	snapshotOut, err := o.inventoryRepo.GetSnapshot(ctx, inventory.GetSnapshotInput{PartyID: input.PartyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inventory snapshot")
	}

	recipe := input.Recipe
	verdict := o.evaluate(recipe, snapshotOut.Snapshot)
	if !verdict.Craftable {
		slog.Info("Craft blocked",
			"party_id", input.PartyID,
			"result", recipe.Result.String(),
			"reason", verdict.Reason,
		)
		return &CraftItemOutput{
			Outcome:  Outcome{Success: false, Reason: verdict.Reason},
			Snapshot: snapshotOut.Snapshot,
		}, nil
	}

	exchangeOut, err := o.inventoryRepo.ApplyExchange(ctx, inventory.ApplyExchangeInput{
		PartyID:       input.PartyID,
		Consume:       recipe.Materials,
		Grant:         []entities.Material{{Ref: recipe.Result, Quantity: 1}},
		SpendCurrency: recipe.Cost,
	})
	if err != nil {
		if errors.IsFailedPrecondition(err) {
			return o.blockedAfterRace(ctx, input.PartyID, recipe)
		}
		return nil, errors.Wrap(err, "failed to apply craft exchange")
	}

	o.recordCraft(ctx, input.PartyID, recipe)

	slog.Info("Craft executed",
		"party_id", input.PartyID,
		"result", recipe.Result.String(),
		"cost", recipe.Cost,
	)

	return &CraftItemOutput{
		Outcome:  Outcome{Success: true},
		Snapshot: exchangeOut.Snapshot,
	}, nil
}

// ListCraftHistory returns the party's recent crafts, newest first
func (o *orchestrator) ListCraftHistory(ctx context.Context, input *ListCraftHistoryInput) (*ListCraftHistoryOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument("party ID is required")
	}

	listOut, err := o.craftLogRepo.List(ctx, craftlog.ListInput{
		PartyID: input.PartyID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read craft history")
	}

	return &ListCraftHistoryOutput{
		Entries: listOut.Entries,
	}, nil
}

// CheckTarget reports whether the entity's annotation carries the target
// tag. Unknown entities are simply not targetable, mirroring the catalog's
// drop-silently policy.
func (o *orchestrator) CheckTarget(ctx context.Context, input *CheckTargetInput) (*CheckTargetOutput, error) {
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument("entity ref is invalid")
	}

	tag := input.Tag
	if tag == "" {
		tag = o.targetTag
	}

	entity, err := o.registry.Lookup(input.Ref.Kind, input.Ref.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return &CheckTargetOutput{Targetable: false}, nil
		}
		return nil, errors.Wrap(err, "failed to look up entity")
	}

	return &CheckTargetOutput{
		Targetable: grammar.HasTag(entity.Note, tag),
	}, nil
}

// evaluate runs the craftability checks in their fixed priority order
// against a snapshot already in hand: recipe shape, then each material in
// declared order, then the requirement gate, then the cost.
func (o *orchestrator) evaluate(recipe entities.Recipe, snapshot entities.Snapshot) Verdict {
	if err := recipe.Validate(); err != nil {
		return Verdict{Reason: reasonInvalidRecipe}
	}

	for _, material := range recipe.Materials {
		if snapshot.QuantityOf(material.Ref) < material.Quantity {
			return Verdict{Reason: fmt.Sprintf(reasonNotEnoughFmt, o.displayName(material.Ref))}
		}
	}

	if recipe.Requirement != nil && !snapshot.Has(*recipe.Requirement) {
		return Verdict{Reason: fmt.Sprintf(reasonRequiresFmt, o.displayName(*recipe.Requirement))}
	}

	if recipe.Cost > 0 && snapshot.Currency < recipe.Cost {
		return Verdict{Reason: reasonNotEnoughCurrency}
	}

	return Verdict{Craftable: true}
}

// blockedAfterRace rebuilds a blocked outcome after the store rejected an
// exchange that looked craftable a moment earlier
func (o *orchestrator) blockedAfterRace(ctx context.Context, partyID string, recipe entities.Recipe) (*CraftItemOutput, error) {
	snapshotOut, err := o.inventoryRepo.GetSnapshot(ctx, inventory.GetSnapshotInput{PartyID: partyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inventory snapshot")
	}

	verdict := o.evaluate(recipe, snapshotOut.Snapshot)
	reason := verdict.Reason
	if verdict.Craftable {
		// The evaluator cannot classify the store's refusal, for example
		// when two materials of the same ref exceed the held count only
		// in aggregate. Fall back to the generic reason.
		reason = reasonCannotCraft
	}

	slog.Info("Craft blocked",
		"party_id", partyID,
		"result", recipe.Result.String(),
		"reason", reason,
	)

	return &CraftItemOutput{
		Outcome:  Outcome{Success: false, Reason: reason},
		Snapshot: snapshotOut.Snapshot,
	}, nil
}

// recordCraft appends the advisory history entry; failures are logged and
// swallowed because the exchange has already committed
func (o *orchestrator) recordCraft(ctx context.Context, partyID string, recipe entities.Recipe) {
	_, err := o.craftLogRepo.Append(ctx, craftlog.AppendInput{
		PartyID:   partyID,
		Result:    entities.Material{Ref: recipe.Result, Quantity: 1},
		Materials: recipe.Materials,
		Cost:      recipe.Cost,
	})
	if err != nil {
		slog.Warn("Failed to record craft log entry",
			"party_id", partyID,
			"result", recipe.Result.String(),
			"error", err,
		)
	}
}

// resolvable reports whether every ref the recipe mentions exists in the
// registries. Unresolvable recipes drop out of the catalog without
// interrupting the scan.
func (o *orchestrator) resolvable(recipe entities.Recipe) bool {
	for _, ref := range recipe.Refs() {
		if _, err := o.registry.Lookup(ref.Kind, ref.ID); err != nil {
			return false
		}
	}
	return true
}

// displayName resolves a ref to its entity name, falling back to the
// canonical ref form when the lookup fails mid-evaluation
func (o *orchestrator) displayName(ref entities.Ref) string {
	entity, err := o.registry.Lookup(ref.Kind, ref.ID)
	if err != nil {
		return ref.String()
	}
	return entity.Name
}
