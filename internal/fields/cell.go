package fields

import "sync"

// CellState is the two-state lifecycle of an editable value.
type CellState int

const (
	// Synced cells mirror their upstream source.
	Synced CellState = iota
	// Dirty cells hold an author edit that upstream changes must not clobber.
	Dirty
)

func (s CellState) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "synced"
}

// Cell is an editable snapshot of a single field. It follows upstream until
// the author edits it, then keeps the edit until committed or reset.
type Cell struct {
	value    string
	upstream string
	state    CellState
}

// NewCell returns a synced cell holding upstream.
func NewCell(upstream string) Cell {
	return Cell{value: upstream, upstream: upstream}
}

// Value returns the cell's current value.
func (c *Cell) Value() string { return c.value }

// State reports whether the cell is synced or dirty.
func (c *Cell) State() CellState { return c.state }

// Sync records a new upstream value. A synced cell adopts it; a dirty cell
// keeps the author's edit.
func (c *Cell) Sync(upstream string) {
	c.upstream = upstream
	if c.state == Synced {
		c.value = upstream
	}
}

// Edit stores an author edit and marks the cell dirty.
func (c *Cell) Edit(v string) {
	c.value = v
	c.state = Dirty
}

// Commit accepts the current value as the new upstream.
func (c *Cell) Commit() {
	c.upstream = c.value
	c.state = Synced
}

// Reset discards any edit and returns to the upstream value.
func (c *Cell) Reset() {
	c.value = c.upstream
	c.state = Synced
}

// ChangeFunc is the host callback invoked when an editable field loses focus.
type ChangeFunc func(key, value string)

// Buffer is a component instance's set of editable cells. It is safe for
// concurrent use.
type Buffer struct {
	mu       sync.Mutex
	cells    map[string]*Cell
	onChange ChangeFunc
}

// NewBuffer seeds one synced cell per entry in initial.
func NewBuffer(initial Map, onChange ChangeFunc) *Buffer {
	b := &Buffer{cells: make(map[string]*Cell, len(initial)), onChange: onChange}
	for k, v := range initial {
		c := NewCell(v)
		b.cells[k] = &c
	}
	return b
}

// Value returns the buffered value for key.
func (b *Buffer) Value(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.cells[key]
	if !ok {
		return "", false
	}
	return c.Value(), true
}

// State returns the cell state for key; unknown keys report Synced.
func (b *Buffer) State(key string) CellState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.cells[key]; ok {
		return c.State()
	}
	return Synced
}

// Resync pushes new upstream values into every cell. Cells the author has
// edited are left alone; new keys get fresh synced cells.
func (b *Buffer) Resync(upstream Map) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, v := range upstream {
		if c, ok := b.cells[k]; ok {
			c.Sync(v)
			continue
		}
		c := NewCell(v)
		b.cells[k] = &c
	}
}

// OnBlur records the author's final value for key and notifies the host.
func (b *Buffer) OnBlur(key, value string) {
	b.mu.Lock()
	c, ok := b.cells[key]
	if !ok {
		nc := NewCell("")
		c = &nc
		b.cells[key] = c
	}
	c.Edit(value)
	cb := b.onChange
	b.mu.Unlock()

	if cb != nil {
		cb(key, value)
	}
}

// Commit marks every dirty cell as persisted.
func (b *Buffer) Commit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.cells {
		c.Commit()
	}
}

// Snapshot returns the current values of all cells.
func (b *Buffer) Snapshot() Map {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(Map, len(b.cells))
	for k, c := range b.cells {
		out[k] = c.Value()
	}
	return out
}

// Dirty returns the values of cells the author has edited but not committed.
func (b *Buffer) Dirty() Map {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := Map{}
	for k, c := range b.cells {
		if c.State() == Dirty {
			out[k] = c.Value()
		}
	}
	return out
}
