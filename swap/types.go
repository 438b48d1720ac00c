package swap

import (
	"github.com/gokms/armsoc/bo"
)

// DrawableID is the stable protocol identifier of a drawable. In-flight swap
// commands hold the identifier rather than the Drawable itself: the drawable
// may be destroyed while a flip is pending, and is re-resolved at completion
// time.
type DrawableID uint32

// ClientID identifies the display-server client that requested a swap.
type ClientID uint32

// Drawable is a presentation target owned by the display-server layer.
type Drawable interface {
	ID() DrawableID
	// IsWindow reports whether this is a top-level window rather than an
	// offscreen surface. Only windows are flip candidates.
	IsWindow() bool
	Width() int
	Height() int
	X() int
	Y() int
}

// Pixmap is the display-server object backing one side of a swap. The swap
// scheduler retargets and exchanges the buffer objects behind pixmaps but
// never owns the pixmaps themselves; it takes pixmap references for the
// duration of an in-flight command.
type Pixmap interface {
	BufferObject() *bo.Object
	SetBufferObject(o *bo.Object)
	Ref()
	Unref()
}

// Screen is the display-server surface the scheduler calls back into.
type Screen interface {
	// LookupDrawable re-resolves a drawable by its stable identifier. A nil
	// result means the drawable has been destroyed; for an in-flight swap this
	// is a valid outcome, not an error.
	LookupDrawable(id DrawableID) Drawable
	// PixmapOf resolves the pixmap currently backing a drawable.
	PixmapOf(d Drawable) Pixmap
	// CopyArea synchronously copies the full drawable area from the source
	// buffer's drawable to the destination buffer's drawable.
	CopyArea(d Drawable, dst, src *Buffer)
	// BumpSerial invalidates the drawable's buffers so the buffer layer
	// reallocates them next frame. Emitted when a drawable transitions between
	// flippable and non-flippable.
	BumpSerial(d Drawable)
}

// CRTC is the mode-setting layer controlling the display outputs.
type CRTC interface {
	SetFlipMode() error
	SetBlitMode() error
	// PageFlip schedules a hardware flip of every output covered by the
	// drawable to the given framebuffer and returns the number of outputs
	// actually scheduled. Zero means no output needed flipping; the command
	// then completes synchronously as a fake flip.
	PageFlip(d Drawable, fbID uint32, cmd *Command) (int, error)
}

// EventWaiter blocks until the kernel delivers at least one display event.
// Delivered flip completions are expected to reach Scheduler.Complete before
// WaitForEvent returns.
type EventWaiter interface {
	WaitForEvent() error
}

// CompletionKind reports how a frame was actually presented. A frame that
// degraded to a copy (including a flip request that covered zero outputs)
// reports CompleteBlit; CompleteFailed means the flip submission itself was
// rejected and no new content reached the screen.
type CompletionKind int

const (
	CompleteFlip CompletionKind = iota
	CompleteBlit
	CompleteFailed
)

var completionKindMapping = make(map[CompletionKind]string)

func (k CompletionKind) String() string {
	return completionKindMapping[k]
}

func init() {
	completionKindMapping[CompleteFlip] = "CompleteFlip"
	completionKindMapping[CompleteBlit] = "CompleteBlit"
	completionKindMapping[CompleteFailed] = "CompleteFailed"
}

// CompletionFunc is invoked exactly once per swap command, on success and
// failure alike. The timestamp fields are always zero; vblank timing is not
// computed by this layer.
type CompletionFunc func(client ClientID, d Drawable, ust, msc uint64, kind CompletionKind, data any)
