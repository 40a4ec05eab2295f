// Package ws serves the crafting menu over a WebSocket connection. Each
// connection is one browsing session: the handler builds the catalog on
// demand, tracks the client's cursor server-side, and answers every client
// message with a typed JSON reply.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/orchestrators/crafting"
	"github.com/forgebound/crafting-api/internal/selection"
)

// DefaultMenuLabel is the catalog heading used when HandlerConfig.MenuLabel
// is left empty.
const DefaultMenuLabel = "Crafting"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service crafting.Service
	// Columns and VisibleRows fix the selection grid geometry for every
	// session this handler serves.
	Columns     int
	VisibleRows int
	// MenuLabel is the heading sent with every catalog message. Defaults
	// to DefaultMenuLabel.
	MenuLabel string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("crafting service is required")
	}

	layout := selection.Config{Columns: c.Columns, VisibleRows: c.VisibleRows}
	if err := layout.Validate(); err != nil {
		return errors.Wrap(err, "invalid grid layout")
	}

	return nil
}

// Handler upgrades HTTP requests to crafting sessions
type Handler struct {
	service  crafting.Service
	layout   selection.Config
	label    string
	upgrader websocket.Upgrader
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	label := cfg.MenuLabel
	if label == "" {
		label = DefaultMenuLabel
	}

	return &Handler{
		service: cfg.Service,
		layout:  selection.Config{Columns: cfg.Columns, VisibleRows: cfg.VisibleRows},
		label:   label,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Sessions are keyed by party, not by user identity, so any
			// origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP upgrades the request and runs the session loop until the client
// disconnects. The party id comes from the `party` query parameter.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	partyID := r.URL.Query().Get("party")
	if partyID == "" {
		err := errors.InvalidArgument("party query parameter is required")
		http.Error(w, err.Error(), errors.GetCode(err).HTTPStatus())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error to the client.
		slog.Warn("WebSocket upgrade failed",
			"party_id", partyID,
			"error", err)
		return
	}

	h.serve(r.Context(), conn, partyID)
}

func (h *Handler) serve(ctx context.Context, conn *websocket.Conn, partyID string) {
	defer func() { _ = conn.Close() }()

	sel, err := selection.New(h.layout)
	if err != nil {
		slog.Error("Selection model rejected validated layout",
			"party_id", partyID,
			"error", err)
		return
	}

	sess := &session{
		service: h.service,
		conn:    conn,
		partyID: partyID,
		label:   h.label,
		sel:     sel,
	}

	slog.Info("Crafting session opened",
		"party_id", partyID)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Discarding malformed client message",
				"party_id", partyID,
				"error", err)
			continue
		}

		if err := sess.handle(ctx, msg); err != nil {
			slog.Warn("Crafting session write failed",
				"party_id", partyID,
				"error", err)
			break
		}
	}

	slog.Info("Crafting session closed",
		"party_id", partyID)
}
