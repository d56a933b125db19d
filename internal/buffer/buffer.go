// Package buffer holds the fixed set of display rows the animator types into.
//
// Each Slot maps 1:1 to a visual row, in index order. Text written to a slot
// is tokenized immediately so the renderer only reads finished tokens.
package buffer

import (
	"github.com/five82/opencustom/internal/highlight"
)

// MinCapacity is the smallest number of rows a Buffer ever holds.
const MinCapacity = 10

// Slot is one displayable row.
type Slot struct {
	Index   int
	Text    string
	Visible bool
	Cursor  bool
	Tokens  []highlight.Token
}

// Buffer is an ordered, fixed-capacity collection of slots. It is not safe
// for concurrent use; the animator owns it on the UI goroutine.
type Buffer struct {
	tokenizer *highlight.Tokenizer
	slots     []Slot
}

// New builds a buffer of max(MinCapacity, capacity) empty slots. A nil
// tokenizer falls back to highlight.Default.
func New(capacity int, tokenizer *highlight.Tokenizer) *Buffer {
	if tokenizer == nil {
		tokenizer = highlight.Default()
	}
	b := &Buffer{tokenizer: tokenizer}
	b.Resize(capacity)
	return b
}

// CapacityFor returns the row count for a region of the given height:
// floor(height/lineHeight) - margin, never below MinCapacity.
func CapacityFor(height, lineHeight, margin int) int {
	if lineHeight <= 0 {
		lineHeight = 1
	}
	return max(MinCapacity, height/lineHeight-margin)
}

// Resize discards every slot and allocates max(MinCapacity, capacity) fresh ones.
func (b *Buffer) Resize(capacity int) {
	capacity = max(MinCapacity, capacity)
	b.slots = make([]Slot, capacity)
	for i := range b.slots {
		b.slots[i].Index = i
	}
}

// Capacity returns the number of slots.
func (b *Buffer) Capacity() int {
	return len(b.slots)
}

func (b *Buffer) inRange(index int) bool {
	return index >= 0 && index < len(b.slots)
}

// SetLine overwrites the text of a slot. Out-of-range indices are ignored.
func (b *Buffer) SetLine(index int, text string) {
	if !b.inRange(index) {
		return
	}
	s := &b.slots[index]
	s.Text = text
	s.Tokens = b.tokenizer.Tokenize(text)
	s.Visible = len(text) > 0
}

// SetCursor shows or hides the cursor glyph on a slot.
func (b *Buffer) SetCursor(index int, on bool) {
	if !b.inRange(index) {
		return
	}
	b.slots[index].Cursor = on
}

// HideCursors removes the cursor glyph from every slot.
func (b *Buffer) HideCursors() {
	for i := range b.slots {
		b.slots[i].Cursor = false
	}
}

// Clear resets a slot to empty and invisible.
func (b *Buffer) Clear(index int) {
	if !b.inRange(index) {
		return
	}
	b.slots[index] = Slot{Index: index}
}

// ClearAll resets every slot.
func (b *Buffer) ClearAll() {
	for i := range b.slots {
		b.slots[i] = Slot{Index: i}
	}
}

// Slot returns a copy of the slot at index and whether it exists.
func (b *Buffer) Slot(index int) (Slot, bool) {
	if !b.inRange(index) {
		return Slot{}, false
	}
	return cloneSlot(b.slots[index]), true
}

// Text returns the visible text of a slot, or "" when out of range.
func (b *Buffer) Text(index int) string {
	if !b.inRange(index) {
		return ""
	}
	return b.slots[index].Text
}

// Slots returns a copy of all slots in row order.
func (b *Buffer) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	for i, s := range b.slots {
		out[i] = cloneSlot(s)
	}
	return out
}

// VisibleCount returns how many slots currently show text.
func (b *Buffer) VisibleCount() int {
	n := 0
	for _, s := range b.slots {
		if s.Visible {
			n++
		}
	}
	return n
}

// VisibleRows returns the indices of slots that show text, in erase order
// (last row first).
func (b *Buffer) VisibleRows() []int {
	var rows []int
	for i := len(b.slots) - 1; i >= 0; i-- {
		if b.slots[i].Visible {
			rows = append(rows, i)
		}
	}
	return rows
}

func cloneSlot(s Slot) Slot {
	if len(s.Tokens) > 0 {
		tokens := make([]highlight.Token, len(s.Tokens))
		copy(tokens, s.Tokens)
		s.Tokens = tokens
	}
	return s
}
