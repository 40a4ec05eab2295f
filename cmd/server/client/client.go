// Package client provides terminal commands for driving a running crafting server
package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/orchestrators/crafting"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
)

var (
	// Connection flags
	serverAddr string
	partyID    string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Terminal client for the crafting server",
	Long:  `Client commands open a WebSocket session against a running crafting server and drive it the way a game client would.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:8080", "crafting server address")
	ClientCmd.PersistentFlags().StringVar(&partyID, "party", "party_demo", "party whose inventory the session uses")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-reply read timeout")

	// Add subcommands
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(craftCmd)
	ClientCmd.AddCommand(historyCmd)
}

// Reply payloads, matching the server's wire format.
type catalogReply struct {
	Label     string                  `json:"label"`
	Entries   []entities.CatalogEntry `json:"entries"`
	Selection struct {
		Cursor int `json:"cursor"`
	} `json:"selection"`
}

type selectionReply struct {
	Index  int              `json:"index"`
	Detail *crafting.Detail `json:"detail"`
}

type outcomeReply struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

type historyReply struct {
	Entries []*craftlog.Entry `json:"entries"`
}

// wsSession wraps one WebSocket connection with typed send/expect helpers
type wsSession struct {
	conn *websocket.Conn
}

// openSession dials the server's /ws endpoint for the configured party
func openSession() (*wsSession, func(), error) {
	u := url.URL{
		Scheme:   "ws",
		Host:     serverAddr,
		Path:     "/ws",
		RawQuery: "party=" + url.QueryEscape(partyID),
	}

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}
	if resp != nil {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return &wsSession{conn: conn}, cleanup, nil
}

func (s *wsSession) send(msg any) error {
	return s.conn.WriteJSON(msg)
}

// expect reads the next reply and decodes it into dest when it carries
// wantType. An error reply from the server becomes a returned error.
func (s *wsSession) expect(wantType string, dest any) error {
	if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("failed to read server reply: %w", err)
	}

	var envelope struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to decode server reply: %w", err)
	}

	if envelope.Type == "error" {
		return fmt.Errorf("server error %s: %s", envelope.Code, envelope.Message)
	}
	if envelope.Type != wantType {
		return fmt.Errorf("expected %q reply, got %q", wantType, envelope.Type)
	}

	return json.Unmarshal(data, dest)
}
