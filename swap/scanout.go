package swap

import (
	"github.com/gokms/armsoc/bo"
)

// MaxScanouts bounds the number of concurrently driven display outputs.
const MaxScanouts = 4

// Slot tracks which buffer object currently backs the hardware framebuffer of
// one display output. The buffer reference is non-owning: the slot is a pure
// lookup relation and the buffer's lifetime is carried by its refcounted
// owners.
type Slot struct {
	X      int
	Y      int
	Width  uint32
	Height uint32
	BO     *bo.Object
	Valid  bool
}

func (s *Slot) used() bool {
	return s.Width != 0 && s.Height != 0
}

// Table is the fixed per-output scanout table, populated by the mode-setting
// layer as outputs are configured and consulted by the swap scheduler.
type Table struct {
	slots [MaxScanouts]Slot
}

// Configure claims a free slot for an output at the given position. Returns
// nil when all slots are taken.
func (t *Table) Configure(x, y int, width, height uint32, b *bo.Object) *Slot {
	for i := range t.slots {
		if t.slots[i].used() {
			continue
		}
		t.slots[i] = Slot{X: x, Y: y, Width: width, Height: height, BO: b}
		return &t.slots[i]
	}
	return nil
}

// FromDrawable returns the slot whose output geometry matches the drawable
// exactly, or nil if the drawable is not aligned with any output.
func (t *Table) FromDrawable(d Drawable) *Slot {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.used() {
			continue
		}
		if s.X == d.X() && s.Y == d.Y() &&
			s.Width == uint32(d.Width()) && s.Height == uint32(d.Height()) {
			return s
		}
	}
	return nil
}

// Set repoints the slot at the given output position to a new buffer object.
func (t *Table) Set(x, y int, b *bo.Object) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.used() && s.X == x && s.Y == y {
			s.BO = b
			return
		}
	}
}

// Validate marks the slot backed by the given buffer as consistent with it.
func (t *Table) Validate(b *bo.Object) {
	for i := range t.slots {
		if t.slots[i].BO == b {
			t.slots[i].Valid = true
			return
		}
	}
}

// InvalidateAll drops every slot's validity. After a blit the framebuffer
// contents are no longer guaranteed to match any particular buffer object.
func (t *Table) InvalidateAll() {
	for i := range t.slots {
		t.slots[i].Valid = false
	}
}

// Slots exposes the table for diagnostics and the mode-setting layer.
func (t *Table) Slots() []Slot {
	return t.slots[:]
}
