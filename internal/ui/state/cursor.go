// Package state holds per-viewer UI state for the terminal host.
package state

// Columns is the fixed width of every grid.
const Columns = 9

// Cursor tracks the highlighted slot of a grid with Size slots.
type Cursor struct {
	Slot int
	Size int
}

// NewCursor starts at slot 0 of a grid with size slots.
func NewCursor(size int) *Cursor {
	c := &Cursor{}
	c.Resize(size)
	return c
}

// Rows is the number of grid rows.
func (c *Cursor) Rows() int {
	if c.Size <= 0 {
		return 0
	}
	return (c.Size + Columns - 1) / Columns
}

// Row and Column locate the cursor.
func (c *Cursor) Row() int    { return c.Slot / Columns }
func (c *Cursor) Column() int { return c.Slot % Columns }

// Resize adapts the cursor to a new grid, keeping the slot when it still fits.
func (c *Cursor) Resize(size int) {
	if size < 0 {
		size = 0
	}
	c.Size = size
	c.clamp()
}

// Set moves the cursor to slot. Slots outside the grid are ignored.
func (c *Cursor) Set(slot int) bool {
	if slot < 0 || slot >= c.Size || slot == c.Slot {
		return false
	}
	c.Slot = slot
	return true
}

// Move shifts the cursor by whole columns and rows, stopping at the edges.
func (c *Cursor) Move(dx, dy int) bool {
	if c.Size == 0 {
		return false
	}
	col := c.Column() + dx
	row := c.Row() + dy
	if col < 0 {
		col = 0
	}
	if col >= Columns {
		col = Columns - 1
	}
	if row < 0 {
		row = 0
	}
	if last := c.Rows() - 1; row > last {
		row = last
	}
	slot := row*Columns + col
	if slot >= c.Size {
		slot = c.Size - 1
	}
	if slot == c.Slot {
		return false
	}
	c.Slot = slot
	return true
}

// Home moves to the first slot.
func (c *Cursor) Home() bool {
	return c.Set(0)
}

// End moves to the last slot.
func (c *Cursor) End() bool {
	return c.Set(c.Size - 1)
}

func (c *Cursor) clamp() {
	if c.Slot < 0 || c.Size == 0 {
		c.Slot = 0
		return
	}
	if c.Slot >= c.Size {
		c.Slot = c.Size - 1
	}
}
