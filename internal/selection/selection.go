// Package selection implements the paginated grid cursor used to browse a
// recipe catalog in a fixed-size viewport. The model is pure bookkeeping:
// it owns no catalog data, only the cursor index, the scroll offset, and
// the row/column geometry.
package selection

import (
	"github.com/forgebound/crafting-api/internal/errors"
)

// Config holds the fixed layout parameters of a selection model
type Config struct {
	// Columns is the number of entries per visual row
	Columns int
	// VisibleRows is how many full rows the viewport shows
	VisibleRows int
}

// Validate ensures the layout parameters are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Columns < 1 {
		vb.Field("Columns", "must be at least 1")
	}
	if c.VisibleRows < 1 {
		vb.Field("VisibleRows", "must be at least 1")
	}

	return vb.Build()
}

// Model tracks the cursor and scroll state over a dynamic-length list.
// When the list is empty the model is in its empty state: Cursor reports -1
// and every navigation operation is a no-op.
type Model struct {
	columns     int
	visibleRows int
	length      int
	cursor      int
	topRow      int
}

// New creates a selection model with an empty list
func New(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Model{
		columns:     cfg.Columns,
		visibleRows: cfg.VisibleRows,
		cursor:      -1,
	}, nil
}

// Reset rebinds the model to a list of the given length, as after a catalog
// rebuild. The cursor is preserved by index and clamped to the new bounds;
// the scroll offset is recomputed so the cursor stays visible.
func (m *Model) Reset(length int) {
	if length < 0 {
		length = 0
	}
	m.length = length

	if length == 0 {
		m.cursor = -1
		m.topRow = 0
		return
	}

	if m.cursor < 0 {
		m.cursor = 0
	} else if m.cursor >= length {
		m.cursor = length - 1
	}
	m.ensureVisible()
}

// Length returns the bound list length
func (m *Model) Length() int {
	return m.length
}

// Empty reports whether the model has nothing to select
func (m *Model) Empty() bool {
	return m.length == 0
}

// Cursor returns the selected index, -1 when empty
func (m *Model) Cursor() int {
	return m.cursor
}

// TopRow returns the first visible row
func (m *Model) TopRow() int {
	return m.topRow
}

// Row returns the visual row containing the cursor, -1 when empty
func (m *Model) Row() int {
	if m.Empty() {
		return -1
	}
	return m.cursor / m.columns
}

// RowCount returns the total number of visual rows
func (m *Model) RowCount() int {
	return (m.length + m.columns - 1) / m.columns
}

// MaxTopRow returns the largest valid scroll offset
func (m *Model) MaxTopRow() int {
	maxTop := m.RowCount() - m.visibleRows
	if maxTop < 0 {
		return 0
	}
	return maxTop
}

// MoveDown moves the cursor one visual row down. Without wrap the cursor
// stays put on the last row; with wrap it continues modulo the list length.
// Reports whether the cursor moved.
func (m *Model) MoveDown(wrap bool) bool {
	if m.Empty() {
		return false
	}
	if m.cursor >= m.length-m.columns && !wrap {
		return false
	}

	m.cursor = (m.cursor + m.columns) % m.length
	m.ensureVisible()
	return true
}

// MoveUp moves the cursor one visual row up, wrapping modulo the list
// length when wrap is set. Reports whether the cursor moved.
func (m *Model) MoveUp(wrap bool) bool {
	if m.Empty() {
		return false
	}
	if m.cursor < m.columns && !wrap {
		return false
	}

	m.cursor = (m.cursor - m.columns + m.length) % m.length
	m.ensureVisible()
	return true
}

// Select sets the cursor directly, as for pointer or initial selection.
// Reports whether the index was in range.
func (m *Model) Select(index int) bool {
	if index < 0 || index >= m.length {
		return false
	}

	m.cursor = index
	m.ensureVisible()
	return true
}

// VisibleRange returns the first and last list indexes inside the viewport.
// Both are -1 when the model is empty.
func (m *Model) VisibleRange() (first, last int) {
	if m.Empty() {
		return -1, -1
	}

	first = m.topRow * m.columns
	last = (m.topRow+m.visibleRows)*m.columns - 1
	if last >= m.length {
		last = m.length - 1
	}
	return first, last
}

// ensureVisible scrolls the viewport the minimal amount needed to contain
// the cursor's row: up to the row when it sits above the viewport, down so
// the row becomes the last visible one when it sits below.
func (m *Model) ensureVisible() {
	row := m.Row()
	if row < 0 {
		m.topRow = 0
		return
	}

	if row < m.topRow {
		m.topRow = row
	} else if row > m.topRow+m.visibleRows-1 {
		m.topRow = row - m.visibleRows + 1
	}

	if maxTop := m.MaxTopRow(); m.topRow > maxTop {
		m.topRow = maxTop
	}
	if m.topRow < 0 {
		m.topRow = 0
	}
}
