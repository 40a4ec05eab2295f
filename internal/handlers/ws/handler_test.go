package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/handlers/ws"
	"github.com/forgebound/crafting-api/internal/orchestrators/crafting"
	craftingmock "github.com/forgebound/crafting-api/internal/orchestrators/crafting/mock"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
)

const testPartyID = "party_123"

// Reply shapes mirror the handler's wire format for assertions.
type catalogReply struct {
	Type      string                  `json:"type"`
	Label     string                  `json:"label"`
	Entries   []entities.CatalogEntry `json:"entries"`
	Selection struct {
		Cursor       int `json:"cursor"`
		TopRow       int `json:"top_row"`
		FirstVisible int `json:"first_visible"`
		LastVisible  int `json:"last_visible"`
	} `json:"selection"`
}

type selectionReply struct {
	Type   string           `json:"type"`
	Index  int              `json:"index"`
	Detail *crafting.Detail `json:"detail"`
}

type outcomeReply struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

type targetableReply struct {
	Type       string `json:"type"`
	Targetable bool   `json:"targetable"`
}

type historyReply struct {
	Type    string            `json:"type"`
	Entries []*craftlog.Entry `json:"entries"`
}

type errorReply struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *craftingmock.MockService
	server      *httptest.Server
	conn        *websocket.Conn

	potionEntry entities.CatalogEntry
	swordEntry  entities.CatalogEntry
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = craftingmock.NewMockService(s.ctrl)

	handler, err := ws.NewHandler(&ws.HandlerConfig{
		Service:     s.mockService,
		Columns:     2,
		VisibleRows: 2,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler)

	s.potionEntry = entities.CatalogEntry{
		Recipe: entities.Recipe{
			Result: entities.NewRef(entities.KindConsumable, 1),
			Materials: []entities.Material{
				{Ref: entities.NewRef(entities.KindConsumable, 8), Quantity: 2},
				{Ref: entities.NewRef(entities.KindConsumable, 9), Quantity: 1},
			},
			Cost: 50,
		},
		ResultName: "Minor Health Potion",
		Craftable:  true,
	}
	s.swordEntry = entities.CatalogEntry{
		Recipe: entities.Recipe{
			Result: entities.NewRef(entities.KindWeapon, 3),
			Materials: []entities.Material{
				{Ref: entities.NewRef(entities.KindConsumable, 8), Quantity: 1},
			},
		},
		ResultName: "Iron Sword",
		Craftable:  false,
		Reason:     "not enough Bitterroot Herb",
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.server.Close()
}

func (s *HandlerTestSuite) dial(partyID string) {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/?party=" + partyID

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	s.conn = conn
}

func (s *HandlerTestSuite) send(msg map[string]any) {
	s.T().Helper()
	s.Require().NoError(s.conn.WriteJSON(msg))
}

func (s *HandlerTestSuite) read(v any) {
	s.T().Helper()
	s.Require().NoError(s.conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	s.Require().NoError(s.conn.ReadJSON(v))
}

func (s *HandlerTestSuite) expectCatalog(entries ...entities.CatalogEntry) {
	s.mockService.EXPECT().
		ListRecipes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *crafting.ListRecipesInput) (*crafting.ListRecipesOutput, error) {
			s.Equal(testPartyID, input.PartyID)
			return &crafting.ListRecipesOutput{Entries: entries}, nil
		})
}

func (s *HandlerTestSuite) TestMissingPartyParamRejectedBeforeUpgrade() {
	resp, err := http.Get(s.server.URL)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestOpenBuildsCatalog() {
	s.expectCatalog(s.potionEntry, s.swordEntry)
	s.dial(testPartyID)

	s.send(map[string]any{"type": "open"})

	var reply catalogReply
	s.read(&reply)

	s.Equal("catalog", reply.Type)
	s.Equal(ws.DefaultMenuLabel, reply.Label)
	s.Require().Len(reply.Entries, 2)
	s.Equal("Minor Health Potion", reply.Entries[0].ResultName)
	s.Equal("Iron Sword", reply.Entries[1].ResultName)
	s.Equal(0, reply.Selection.Cursor)
	s.Equal(0, reply.Selection.TopRow)
	s.Equal(0, reply.Selection.FirstVisible)
	s.Equal(1, reply.Selection.LastVisible)
}

func (s *HandlerTestSuite) TestMoveRepliesWithDetail() {
	entries := []entities.CatalogEntry{s.potionEntry, s.swordEntry, s.potionEntry, s.swordEntry}
	s.expectCatalog(entries...)

	// Two columns, so one row down from index 0 lands on index 2.
	s.mockService.EXPECT().
		GetRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *crafting.GetRecipeInput) (*crafting.GetRecipeOutput, error) {
			s.Equal(testPartyID, input.PartyID)
			s.Equal(entries[2].Recipe, input.Recipe)
			return &crafting.GetRecipeOutput{Detail: crafting.Detail{
				Recipe:     input.Recipe,
				ResultName: "Minor Health Potion",
				Verdict:    crafting.Verdict{Craftable: true},
			}}, nil
		})

	s.dial(testPartyID)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)

	s.send(map[string]any{"type": "move", "direction": "down"})

	var reply selectionReply
	s.read(&reply)

	s.Equal("selection", reply.Type)
	s.Equal(2, reply.Index)
	s.Require().NotNil(reply.Detail)
	s.Equal("Minor Health Potion", reply.Detail.ResultName)
	s.True(reply.Detail.Verdict.Craftable)
}

func (s *HandlerTestSuite) TestMoveOnEmptyCatalogRepliesWithoutDetail() {
	s.expectCatalog()
	s.dial(testPartyID)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)
	s.Equal(-1, catalog.Selection.Cursor)

	s.send(map[string]any{"type": "move", "direction": "down"})

	var reply selectionReply
	s.read(&reply)

	s.Equal("selection", reply.Type)
	s.Equal(-1, reply.Index)
	s.Nil(reply.Detail)
}

func (s *HandlerTestSuite) TestSelectOutOfRangeKeepsConnectionOpen() {
	s.expectCatalog(s.potionEntry, s.swordEntry)
	s.dial(testPartyID)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)

	s.send(map[string]any{"type": "select", "index": 9})

	var reply errorReply
	s.read(&reply)
	s.Equal("error", reply.Type)
	s.Equal(errors.CodeInvalidArgument.String(), reply.Code)

	// The session survives a rejected selection.
	s.mockService.EXPECT().
		GetRecipe(gomock.Any(), gomock.Any()).
		Return(&crafting.GetRecipeOutput{Detail: crafting.Detail{ResultName: "Iron Sword"}}, nil)

	s.send(map[string]any{"type": "select", "index": 1})

	var selected selectionReply
	s.read(&selected)
	s.Equal(1, selected.Index)
}

func (s *HandlerTestSuite) TestCraftRepliesOutcomeThenFreshCatalog() {
	s.expectCatalog(s.potionEntry, s.swordEntry)

	s.mockService.EXPECT().
		CraftItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *crafting.CraftItemInput) (*crafting.CraftItemOutput, error) {
			s.Equal(testPartyID, input.PartyID)
			s.Equal(s.potionEntry.Recipe, input.Recipe)
			return &crafting.CraftItemOutput{Outcome: crafting.Outcome{Success: true}}, nil
		})

	// The post-craft rebuild sees the potion as no longer affordable.
	spent := s.potionEntry
	spent.Craftable = false
	spent.Reason = "not enough currency"
	s.expectCatalog(spent, s.swordEntry)

	s.dial(testPartyID)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)

	s.send(map[string]any{"type": "craft"})

	var outcome outcomeReply
	s.read(&outcome)
	s.Equal("outcome", outcome.Type)
	s.True(outcome.Success)

	var rebuilt catalogReply
	s.read(&rebuilt)
	s.Equal("catalog", rebuilt.Type)
	s.Require().Len(rebuilt.Entries, 2)
	s.False(rebuilt.Entries[0].Craftable)
	s.Equal("not enough currency", rebuilt.Entries[0].Reason)
	s.Equal(0, rebuilt.Selection.Cursor)
}

func (s *HandlerTestSuite) TestCraftBlockedOutcomeIsNotAnError() {
	s.expectCatalog(s.swordEntry)

	s.mockService.EXPECT().
		CraftItem(gomock.Any(), gomock.Any()).
		Return(&crafting.CraftItemOutput{Outcome: crafting.Outcome{
			Success: false,
			Reason:  "not enough Bitterroot Herb",
		}}, nil)

	s.expectCatalog(s.swordEntry)

	s.dial(testPartyID)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)

	s.send(map[string]any{"type": "craft"})

	var outcome outcomeReply
	s.read(&outcome)
	s.Equal("outcome", outcome.Type)
	s.False(outcome.Success)
	s.Equal("not enough Bitterroot Herb", outcome.Reason)

	var rebuilt catalogReply
	s.read(&rebuilt)
	s.Equal("catalog", rebuilt.Type)
}

func (s *HandlerTestSuite) TestCraftWithoutSelectionIsRejected() {
	s.dial(testPartyID)

	// No open message, so the session has no catalog yet.
	s.send(map[string]any{"type": "craft"})

	var reply errorReply
	s.read(&reply)
	s.Equal("error", reply.Type)
	s.Equal(errors.CodeFailedPrecondition.String(), reply.Code)
}

func (s *HandlerTestSuite) TestTarget() {
	s.mockService.EXPECT().
		CheckTarget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *crafting.CheckTargetInput) (*crafting.CheckTargetOutput, error) {
			s.Equal(entities.NewRef(entities.KindConsumable, 7), input.Ref)
			s.Equal("", input.Tag)
			return &crafting.CheckTargetOutput{Targetable: true}, nil
		})

	s.dial(testPartyID)
	s.send(map[string]any{"type": "target", "kind": "consumable", "id": 7})

	var reply targetableReply
	s.read(&reply)
	s.Equal("targetable", reply.Type)
	s.True(reply.Targetable)
}

func (s *HandlerTestSuite) TestHistory() {
	crafted := &craftlog.Entry{
		ID:      "craft_1",
		PartyID: testPartyID,
		Result: entities.Material{
			Ref:      entities.NewRef(entities.KindConsumable, 1),
			Quantity: 1,
		},
		Cost:      50,
		CraftedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	s.mockService.EXPECT().
		ListCraftHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *crafting.ListCraftHistoryInput) (*crafting.ListCraftHistoryOutput, error) {
			s.Equal(testPartyID, input.PartyID)
			s.Equal(5, input.Limit)
			return &crafting.ListCraftHistoryOutput{Entries: []*craftlog.Entry{crafted}}, nil
		})

	s.dial(testPartyID)
	s.send(map[string]any{"type": "history", "limit": 5})

	var reply historyReply
	s.read(&reply)
	s.Equal("history", reply.Type)
	s.Require().Len(reply.Entries, 1)
	s.Equal("craft_1", reply.Entries[0].ID)
	s.Equal(50, reply.Entries[0].Cost)
}

func (s *HandlerTestSuite) TestUnknownMessageTypeKeepsConnectionOpen() {
	s.dial(testPartyID)
	s.send(map[string]any{"type": "bogus"})

	var reply errorReply
	s.read(&reply)
	s.Equal("error", reply.Type)
	s.Equal(errors.CodeInvalidArgument.String(), reply.Code)

	s.expectCatalog(s.potionEntry)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)
	s.Equal("catalog", catalog.Type)
}

func (s *HandlerTestSuite) TestMalformedMessageIsDiscarded() {
	s.dial(testPartyID)
	s.Require().NoError(s.conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	// The next well-formed message is served as if nothing happened.
	s.expectCatalog(s.potionEntry)
	s.send(map[string]any{"type": "open"})

	var catalog catalogReply
	s.read(&catalog)
	s.Equal("catalog", catalog.Type)
	s.Len(catalog.Entries, 1)
}

func (s *HandlerTestSuite) TestServiceErrorBecomesErrorReply() {
	s.mockService.EXPECT().
		ListRecipes(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("registry unavailable"))

	s.dial(testPartyID)
	s.send(map[string]any{"type": "open"})

	var reply errorReply
	s.read(&reply)
	s.Equal("error", reply.Type)
	s.Equal(errors.CodeInternal.String(), reply.Code)
	s.Contains(reply.Message, "registry unavailable")
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestNewHandlerValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := craftingmock.NewMockService(ctrl)

	testCases := []struct {
		name    string
		cfg     *ws.HandlerConfig
		wantErr bool
	}{
		{
			name:    "missing service",
			cfg:     &ws.HandlerConfig{Columns: 2, VisibleRows: 2},
			wantErr: true,
		},
		{
			name:    "zero columns",
			cfg:     &ws.HandlerConfig{Service: service, VisibleRows: 2},
			wantErr: true,
		},
		{
			name:    "zero visible rows",
			cfg:     &ws.HandlerConfig{Service: service, Columns: 2},
			wantErr: true,
		},
		{
			name: "valid",
			cfg:  &ws.HandlerConfig{Service: service, Columns: 2, VisibleRows: 2, MenuLabel: "Workshop"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, err := ws.NewHandler(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected config error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if handler == nil {
				t.Fatal("expected handler, got nil")
			}
		})
	}
}
