package inventory

import (
	"context"
	"sync"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
)

// partyState holds one party's balances, guarded by the repository mutex
type partyState struct {
	quantities map[string]int
	currency   int
}

type memoryRepository struct {
	mu      sync.RWMutex
	parties map[string]*partyState
}

// NewMemoryRepository creates an in-memory repository. It backs demo
// servers and tests that do not want a Redis dependency; semantics match
// the Redis repository, including clean FailedPrecondition on shortfall.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		parties: make(map[string]*partyState),
	}
}

// Ensure memoryRepository implements Repository
var _ Repository = (*memoryRepository)(nil)

// GetSnapshot copies the party's balances into a detached view
func (r *memoryRepository) GetSnapshot(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetSnapshotOutput{
		Snapshot: r.snapshotLocked(input.PartyID),
	}, nil
}

// QuantityOf reads a single held quantity
func (r *memoryRepository) QuantityOf(ctx context.Context, input QuantityOfInput) (*QuantityOfOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument(errRefInvalid)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	quantity := 0
	if state, ok := r.parties[input.PartyID]; ok {
		quantity = state.quantities[input.Ref.String()]
	}

	return &QuantityOfOutput{
		Quantity: quantity,
	}, nil
}

// Has reports whether at least one unit of the ref is held
func (r *memoryRepository) Has(ctx context.Context, input HasInput) (*HasOutput, error) {
	out, err := r.QuantityOf(ctx, QuantityOfInput{
		PartyID: input.PartyID,
		Ref:     input.Ref,
	})
	if err != nil {
		return nil, err
	}

	return &HasOutput{
		Held: out.Quantity > 0,
	}, nil
}

// Currency reads the currency balance
func (r *memoryRepository) Currency(ctx context.Context, input CurrencyInput) (*CurrencyOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	amount := 0
	if state, ok := r.parties[input.PartyID]; ok {
		amount = state.currency
	}

	return &CurrencyOutput{
		Amount: amount,
	}, nil
}

// Add grants units of an entity
func (r *memoryRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument(errRefInvalid)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument(errQuantityNotPositive)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.stateLocked(input.PartyID)
	state.quantities[input.Ref.String()] += input.Quantity

	return &AddOutput{
		NewQuantity: state.quantities[input.Ref.String()],
	}, nil
}

// Consume removes units of an entity, failing cleanly on shortfall
func (r *memoryRepository) Consume(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument(errRefInvalid)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument(errQuantityNotPositive)
	}

	out, err := r.ApplyExchange(ctx, ApplyExchangeInput{
		PartyID: input.PartyID,
		Consume: []entities.Material{{Ref: input.Ref, Quantity: input.Quantity}},
	})
	if err != nil {
		return nil, err
	}

	return &ConsumeOutput{
		NewQuantity: out.Snapshot.QuantityOf(input.Ref),
	}, nil
}

// AddCurrency grants currency
func (r *memoryRepository) AddCurrency(ctx context.Context, input AddCurrencyInput) (*AddCurrencyOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmountNotPositive)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.stateLocked(input.PartyID)
	state.currency += input.Amount

	return &AddCurrencyOutput{
		Balance: state.currency,
	}, nil
}

// SpendCurrency spends currency, failing cleanly when the balance is short
func (r *memoryRepository) SpendCurrency(ctx context.Context, input SpendCurrencyInput) (*SpendCurrencyOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmountNotPositive)
	}

	out, err := r.ApplyExchange(ctx, ApplyExchangeInput{
		PartyID:       input.PartyID,
		SpendCurrency: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	return &SpendCurrencyOutput{
		Balance: out.Snapshot.Currency,
	}, nil
}

// ApplyExchange applies a whole resource exchange under the write lock,
// re-verifying every precondition before the first mutation
func (r *memoryRepository) ApplyExchange(ctx context.Context, input ApplyExchangeInput) (*ApplyExchangeOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	for _, material := range input.Consume {
		if !material.Ref.Valid() {
			return nil, errors.InvalidArgument(errRefInvalid)
		}
		if material.Quantity <= 0 {
			return nil, errors.InvalidArgument(errQuantityNotPositive)
		}
	}
	for _, material := range input.Grant {
		if !material.Ref.Valid() {
			return nil, errors.InvalidArgument(errRefInvalid)
		}
		if material.Quantity <= 0 {
			return nil, errors.InvalidArgument(errQuantityNotPositive)
		}
	}
	if input.SpendCurrency < 0 {
		return nil, errors.InvalidArgument(errSpendNegative)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.stateLocked(input.PartyID)

	demand := make(map[string]int)
	for _, material := range input.Consume {
		demand[material.Ref.String()] += material.Quantity
	}
	for _, material := range input.Consume {
		field := material.Ref.String()
		if state.quantities[field] < demand[field] {
			return nil, errors.FailedPreconditionf("not enough %s: have %d, need %d",
				field, state.quantities[field], demand[field])
		}
	}
	if state.currency < input.SpendCurrency {
		return nil, errors.FailedPreconditionf("not enough currency: have %d, need %d",
			state.currency, input.SpendCurrency)
	}

	for _, material := range input.Consume {
		field := material.Ref.String()
		state.quantities[field] -= material.Quantity
		if state.quantities[field] <= 0 {
			delete(state.quantities, field)
		}
	}
	for _, material := range input.Grant {
		state.quantities[material.Ref.String()] += material.Quantity
	}
	state.currency -= input.SpendCurrency

	return &ApplyExchangeOutput{
		Snapshot: r.snapshotLocked(input.PartyID),
	}, nil
}

// stateLocked returns the party's state, creating it on first touch.
// Callers must hold the write lock.
func (r *memoryRepository) stateLocked(partyID string) *partyState {
	state, ok := r.parties[partyID]
	if !ok {
		state = &partyState{quantities: make(map[string]int)}
		r.parties[partyID] = state
	}
	return state
}

// snapshotLocked copies the party's balances. Callers must hold at least
// the read lock.
func (r *memoryRepository) snapshotLocked(partyID string) entities.Snapshot {
	state, ok := r.parties[partyID]
	if !ok {
		return entities.Snapshot{Quantities: map[string]int{}}
	}

	quantities := make(map[string]int, len(state.quantities))
	for field, quantity := range state.quantities {
		quantities[field] = quantity
	}

	return entities.Snapshot{
		Quantities: quantities,
		Currency:   state.currency,
	}
}
