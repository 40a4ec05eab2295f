package craftlog

import (
	"context"
	"sync"

	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/pkg/clock"
	"github.com/forgebound/crafting-api/internal/pkg/idgen"
)

// MemoryConfig holds the configuration for the in-memory repository
type MemoryConfig struct {
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *MemoryConfig) Validate() error {
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("ID generator is required")
	}
	return nil
}

type memoryRepository struct {
	mu          sync.RWMutex
	clock       clock.Clock
	idGenerator idgen.Generator
	entries     map[string][]*Entry
}

// NewMemoryRepository creates an in-memory craft history, matching the
// Redis repository's ordering and retention semantics
func NewMemoryRepository(cfg *MemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &memoryRepository{
		clock:       cfg.Clock,
		idGenerator: cfg.IDGenerator,
		entries:     make(map[string][]*Entry),
	}, nil
}

// Ensure memoryRepository implements Repository
var _ Repository = (*memoryRepository)(nil)

// Append records a completed craft, newest first
func (r *memoryRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppendInput(input); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:        r.idGenerator.Generate(),
		PartyID:   input.PartyID,
		Result:    input.Result,
		Materials: input.Materials,
		Cost:      input.Cost,
		CraftedAt: r.clock.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log := append([]*Entry{entry}, r.entries[input.PartyID]...)
	if len(log) > maxEntries {
		log = log[:maxEntries]
	}
	r.entries[input.PartyID] = log

	return &AppendOutput{
		Entry: entry,
	}, nil
}

// List returns the most recent crafts, newest first
func (r *memoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	limit := clampLimit(input.Limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.entries[input.PartyID]
	if limit > len(log) {
		limit = len(log)
	}

	entries := make([]*Entry, limit)
	copy(entries, log[:limit])

	return &ListOutput{
		Entries: entries,
	}, nil
}
