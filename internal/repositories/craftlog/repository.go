// Package craftlog records completed crafts per party, newest first, with
// a bounded retention window. The log is advisory history: losing an entry
// never blocks a craft.
package craftlog

import (
	"context"
	"time"

	"github.com/forgebound/crafting-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=craftlogmock github.com/forgebound/crafting-api/internal/repositories/craftlog Repository

// Entry is one completed craft
type Entry struct {
	ID        string              `json:"id"`
	PartyID   string              `json:"party_id"`
	Result    entities.Material   `json:"result"`
	Materials []entities.Material `json:"materials"`
	Cost      int                 `json:"cost"`
	CraftedAt time.Time           `json:"crafted_at"`
}

// AppendInput contains parameters for recording a completed craft
type AppendInput struct {
	PartyID   string
	Result    entities.Material
	Materials []entities.Material
	Cost      int
}

// AppendOutput contains the recorded entry with its assigned ID and time
type AppendOutput struct {
	Entry *Entry
}

// ListInput contains parameters for reading recent crafts. A zero Limit
// uses the default page size.
type ListInput struct {
	PartyID string
	Limit   int
}

// ListOutput contains entries, newest first
type ListOutput struct {
	Entries []*Entry
}

// Repository defines the interface for craft history storage
type Repository interface {
	// Append records a completed craft, assigning ID and timestamp
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the most recent crafts, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
