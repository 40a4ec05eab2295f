package ws

import (
	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/orchestrators/crafting"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
)

// clientMessage is the union of every message a client may send. Type picks
// the operation; the remaining fields are read only where they apply.
type clientMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
	Wrap      bool   `json:"wrap,omitempty"`
	Index     int    `json:"index,omitempty"`
	Kind      string `json:"kind,omitempty"`
	ID        int    `json:"id,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// selectionState mirrors the cursor and viewport of the server-side
// selection model so clients can render without tracking geometry themselves.
type selectionState struct {
	Cursor       int `json:"cursor"`
	TopRow       int `json:"top_row"`
	FirstVisible int `json:"first_visible"`
	LastVisible  int `json:"last_visible"`
}

type catalogMessage struct {
	Type      string                  `json:"type"`
	Label     string                  `json:"label"`
	Entries   []entities.CatalogEntry `json:"entries"`
	Selection selectionState          `json:"selection"`
}

type selectionMessage struct {
	Type   string           `json:"type"`
	Index  int              `json:"index"`
	Detail *crafting.Detail `json:"detail,omitempty"`
}

type outcomeMessage struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

type targetableMessage struct {
	Type       string `json:"type"`
	Targetable bool   `json:"targetable"`
}

type historyMessage struct {
	Type    string            `json:"type"`
	Entries []*craftlog.Entry `json:"entries"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
