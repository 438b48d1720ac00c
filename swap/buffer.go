package swap

// Attachment identifies which side of a swap a buffer represents.
type Attachment int

const (
	AttachFrontLeft Attachment = iota
	AttachBackLeft
)

// Buffer wraps a pixmap handed to the scheduler as one side of a swap and
// remembers whether its drawable could flip on the previous frame.
//
// Buffers are not reallocated every frame; that would be needless overhead.
// Instead the scheduler compares the current flip capability against the
// recorded one and bumps the drawable's serial number on a transition, so the
// buffer layer reallocates on the next frame only — into scanout-capable
// memory when the drawable becomes flippable, or out of it when it no longer
// is.
type Buffer struct {
	attachment Attachment
	pixmap     Pixmap

	// prevCanFlip is -1 until the first swap has been scheduled.
	prevCanFlip int
}

func NewBuffer(attachment Attachment, pixmap Pixmap) *Buffer {
	return &Buffer{
		attachment:  attachment,
		pixmap:      pixmap,
		prevCanFlip: -1,
	}
}

func (b *Buffer) Attachment() Attachment { return b.attachment }
func (b *Buffer) Pixmap() Pixmap         { return b.pixmap }
