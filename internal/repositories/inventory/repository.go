// Package inventory provides the repository interface and types for party
// inventories: held entity quantities plus the currency balance. This is
// the mutable store the craftability evaluator reads and the craft executor
// writes.
package inventory

import (
	"context"

	"github.com/forgebound/crafting-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/forgebound/crafting-api/internal/repositories/inventory Repository

// GetSnapshotInput contains parameters for reading a full inventory view
type GetSnapshotInput struct {
	PartyID string
}

// GetSnapshotOutput contains the point-in-time inventory view
type GetSnapshotOutput struct {
	Snapshot entities.Snapshot
}

// QuantityOfInput contains parameters for reading one held quantity
type QuantityOfInput struct {
	PartyID string
	Ref     entities.Ref
}

// QuantityOfOutput contains the held quantity, zero when absent
type QuantityOfOutput struct {
	Quantity int
}

// HasInput contains parameters for a possession check
type HasInput struct {
	PartyID string
	Ref     entities.Ref
}

// HasOutput reports whether at least one unit is held
type HasOutput struct {
	Held bool
}

// CurrencyInput contains parameters for reading the currency balance
type CurrencyInput struct {
	PartyID string
}

// CurrencyOutput contains the currency balance
type CurrencyOutput struct {
	Amount int
}

// AddInput contains parameters for granting units of an entity
type AddInput struct {
	PartyID  string
	Ref      entities.Ref
	Quantity int
}

// AddOutput contains the quantity held after the grant
type AddOutput struct {
	NewQuantity int
}

// ConsumeInput contains parameters for removing units of an entity
type ConsumeInput struct {
	PartyID  string
	Ref      entities.Ref
	Quantity int
}

// ConsumeOutput contains the quantity held after the removal
type ConsumeOutput struct {
	NewQuantity int
}

// AddCurrencyInput contains parameters for granting currency
type AddCurrencyInput struct {
	PartyID string
	Amount  int
}

// AddCurrencyOutput contains the balance after the grant
type AddCurrencyOutput struct {
	Balance int
}

// SpendCurrencyInput contains parameters for spending currency
type SpendCurrencyInput struct {
	PartyID string
	Amount  int
}

// SpendCurrencyOutput contains the balance after the spend
type SpendCurrencyOutput struct {
	Balance int
}

// ApplyExchangeInput describes one atomic resource exchange: consume all
// the listed materials, grant the listed results, and spend the currency,
// together or not at all.
type ApplyExchangeInput struct {
	PartyID       string
	Consume       []entities.Material
	Grant         []entities.Material
	SpendCurrency int
}

// ApplyExchangeOutput contains the inventory view after the exchange
type ApplyExchangeOutput struct {
	Snapshot entities.Snapshot
}

// Repository defines the interface for party inventory storage operations
type Repository interface {
	// GetSnapshot reads the full inventory view the evaluator consumes
	GetSnapshot(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error)

	// QuantityOf reads one held quantity, zero when absent
	QuantityOf(ctx context.Context, input QuantityOfInput) (*QuantityOfOutput, error)

	// Has reports whether at least one unit of the ref is held
	Has(ctx context.Context, input HasInput) (*HasOutput, error)

	// Currency reads the currency balance
	Currency(ctx context.Context, input CurrencyInput) (*CurrencyOutput, error)

	// Add grants units of an entity
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Consume removes units of an entity; fails with FailedPrecondition
	// on shortfall without a partial write
	Consume(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error)

	// AddCurrency grants currency
	AddCurrency(ctx context.Context, input AddCurrencyInput) (*AddCurrencyOutput, error)

	// SpendCurrency spends currency; fails with FailedPrecondition when
	// the balance is short
	SpendCurrency(ctx context.Context, input SpendCurrencyInput) (*SpendCurrencyOutput, error)

	// ApplyExchange applies a whole resource exchange atomically. Every
	// precondition is re-verified inside the store's critical section, so
	// a concurrent mutation between an outside evaluation and this call
	// surfaces as FailedPrecondition instead of a negative balance.
	ApplyExchange(ctx context.Context, input ApplyExchangeInput) (*ApplyExchangeOutput, error)
}
