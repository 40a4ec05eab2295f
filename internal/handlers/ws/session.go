package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/orchestrators/crafting"
	"github.com/forgebound/crafting-api/internal/selection"
)

const writeWait = 10 * time.Second

// session is the per-connection state: the catalog as of the last rebuild
// and the cursor browsing it. All methods run on the connection's read loop,
// so no locking is needed.
type session struct {
	service crafting.Service
	conn    *websocket.Conn
	partyID string
	label   string
	catalog []entities.CatalogEntry
	sel     *selection.Model
}

// handle dispatches one client message. A non-nil return means the
// connection itself failed and the read loop should stop; service errors are
// reported to the client in-band and do not close the connection.
func (s *session) handle(ctx context.Context, msg clientMessage) error {
	switch msg.Type {
	case "open":
		return s.handleOpen(ctx)
	case "move":
		return s.handleMove(ctx, msg.Direction, msg.Wrap)
	case "select":
		return s.handleSelect(ctx, msg.Index)
	case "craft":
		return s.handleCraft(ctx)
	case "target":
		return s.handleTarget(ctx, msg.Kind, msg.ID, msg.Tag)
	case "history":
		return s.handleHistory(ctx, msg.Limit)
	default:
		return s.writeError(errors.InvalidArgumentf("unknown message type %q", msg.Type))
	}
}

func (s *session) handleOpen(ctx context.Context) error {
	if err := s.refreshCatalog(ctx); err != nil {
		return s.writeError(err)
	}
	return s.writeCatalog()
}

func (s *session) handleMove(ctx context.Context, direction string, wrap bool) error {
	switch direction {
	case "up":
		s.sel.MoveUp(wrap)
	case "down":
		s.sel.MoveDown(wrap)
	default:
		return s.writeError(errors.InvalidArgumentf("unknown move direction %q", direction))
	}
	return s.writeSelection(ctx)
}

func (s *session) handleSelect(ctx context.Context, index int) error {
	if !s.sel.Select(index) {
		return s.writeError(errors.InvalidArgumentf("selection index %d is out of range", index))
	}
	return s.writeSelection(ctx)
}

func (s *session) handleCraft(ctx context.Context) error {
	entry, ok := s.selectedEntry()
	if !ok {
		return s.writeError(errors.FailedPrecondition("no recipe is selected"))
	}

	output, err := s.service.CraftItem(ctx, &crafting.CraftItemInput{
		PartyID: s.partyID,
		Recipe:  entry.Recipe,
	})
	if err != nil {
		return s.writeError(err)
	}

	if err := s.write(outcomeMessage{
		Type:    "outcome",
		Success: output.Outcome.Success,
		Reason:  output.Outcome.Reason,
	}); err != nil {
		return err
	}

	// A craft changes the inventory, so the catalog the client sees is
	// stale either way; rebuild and resend it with the cursor preserved.
	if err := s.refreshCatalog(ctx); err != nil {
		return s.writeError(err)
	}
	return s.writeCatalog()
}

func (s *session) handleTarget(ctx context.Context, kind string, id int, tag string) error {
	output, err := s.service.CheckTarget(ctx, &crafting.CheckTargetInput{
		Ref: entities.Ref{Kind: entities.Kind(kind), ID: id},
		Tag: tag,
	})
	if err != nil {
		return s.writeError(err)
	}
	return s.write(targetableMessage{Type: "targetable", Targetable: output.Targetable})
}

func (s *session) handleHistory(ctx context.Context, limit int) error {
	output, err := s.service.ListCraftHistory(ctx, &crafting.ListCraftHistoryInput{
		PartyID: s.partyID,
		Limit:   limit,
	})
	if err != nil {
		return s.writeError(err)
	}
	return s.write(historyMessage{Type: "history", Entries: output.Entries})
}

// refreshCatalog rebuilds the catalog and rebinds the selection model to its
// new length. Reset keeps the cursor index where possible.
func (s *session) refreshCatalog(ctx context.Context) error {
	output, err := s.service.ListRecipes(ctx, &crafting.ListRecipesInput{PartyID: s.partyID})
	if err != nil {
		return err
	}

	s.catalog = output.Entries
	s.sel.Reset(len(output.Entries))
	return nil
}

// writeSelection reports the cursor after a navigation message, with the
// detail view of whatever is now under it. An empty catalog yields index -1
// and no detail.
func (s *session) writeSelection(ctx context.Context) error {
	msg := selectionMessage{Type: "selection", Index: s.sel.Cursor()}

	if entry, ok := s.selectedEntry(); ok {
		output, err := s.service.GetRecipe(ctx, &crafting.GetRecipeInput{
			PartyID: s.partyID,
			Recipe:  entry.Recipe,
		})
		if err != nil {
			return s.writeError(err)
		}
		msg.Detail = &output.Detail
	}

	return s.write(msg)
}

func (s *session) writeCatalog() error {
	return s.write(catalogMessage{
		Type:      "catalog",
		Label:     s.label,
		Entries:   s.catalog,
		Selection: s.selectionState(),
	})
}

func (s *session) selectionState() selectionState {
	first, last := s.sel.VisibleRange()
	return selectionState{
		Cursor:       s.sel.Cursor(),
		TopRow:       s.sel.TopRow(),
		FirstVisible: first,
		LastVisible:  last,
	}
}

func (s *session) selectedEntry() (entities.CatalogEntry, bool) {
	cursor := s.sel.Cursor()
	if cursor < 0 || cursor >= len(s.catalog) {
		return entities.CatalogEntry{}, false
	}
	return s.catalog[cursor], true
}

func (s *session) writeError(err error) error {
	return s.write(errorMessage{
		Type:    "error",
		Code:    errors.GetCode(err).String(),
		Message: err.Error(),
	})
}

func (s *session) write(v any) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}
