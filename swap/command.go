package swap

type commandFlags uint32

const (
	// commandFakeFlip marks a flip request that covered zero outputs and was
	// completed synchronously without hardware involvement.
	commandFakeFlip commandFlags = 1 << iota
	// commandFailed marks a flip whose submission was rejected.
	commandFailed
)

// Command is one in-flight presentation request. It is created by
// Scheduler.Schedule and freed when the last display output reports
// completion; until then it holds an extra reference on both pixmaps, since
// the drawable itself may be destroyed mid-flight.
type Command struct {
	kind   CompletionKind
	client ClientID
	drawID DrawableID

	srcPix Pixmap
	dstPix Pixmap

	// pending counts the display outputs that still have to confirm the flip.
	// Completion is observable only when the last one reports in.
	pending int
	flags   commandFlags

	x, y int

	fn   CompletionFunc
	data any
}

func (c *Command) Kind() CompletionKind { return c.kind }
func (c *Command) Drawable() DrawableID { return c.drawID }
func (c *Command) Pending() int         { return c.pending }
func (c *Command) Failed() bool         { return c.flags&commandFailed != 0 }
func (c *Command) FakeFlip() bool       { return c.flags&commandFakeFlip != 0 }

// notifyKind maps the command's internal state to the kind reported to the
// completion callback: fake flips degrade to CompleteBlit, failures to
// CompleteFailed.
func (c *Command) notifyKind() CompletionKind {
	if c.flags&commandFailed != 0 {
		return CompleteFailed
	}
	if c.flags&commandFakeFlip != 0 {
		return CompleteBlit
	}
	return c.kind
}

// exchangePixmaps swaps which buffer object backs each pixmap. This is an
// ownership transfer, not a copy; reference counts move with the bindings.
func exchangePixmaps(a, b Pixmap) {
	aBO := a.BufferObject()
	bBO := b.BufferObject()
	a.SetBufferObject(bBO)
	b.SetBufferObject(aBO)
}
