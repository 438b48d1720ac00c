package swap

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/gokms/armsoc/bo"
	"github.com/gokms/armsoc/internal/drm"
)

// Scheduler decides, per swap request, whether a frame is presented by
// pointing the display output at the back buffer (flip) or by copying pixels
// into the current front buffer (blit), and reconciles the asynchronous
// completion events of in-flight flips.
//
// The scheduler is single-threaded by contract: all calls, including Complete
// invocations driven by the event source, must come from the one control-flow
// goroutine of the display server.
type Scheduler struct {
	device   drm.Device
	screen   Screen
	crtc     CRTC
	events   EventWaiter
	scanouts *Table
	logger   *slog.Logger

	// fallback is the shared blit-target scanout buffer assigned to
	// destinations that cannot flip.
	fallback *bo.Object

	pendingFlips int
	hasResized   bool
	vblankErrs   int
}

// CreateOptions carries the collaborators a Scheduler is wired to.
type CreateOptions struct {
	// Device is the kernel surface, used for vblank queries.
	Device drm.Device
	// Screen is the display-server layer above this core.
	Screen Screen
	// CRTC is the mode-setting layer driving the outputs.
	CRTC CRTC
	// Events blocks on the kernel event source during teardown.
	Events EventWaiter
	// Scanouts is the shared per-output scanout table. Optional; an empty
	// table is used when nil.
	Scanouts *Table
	// Fallback is the shared scanout buffer used as the blit destination for
	// non-flippable drawables.
	Fallback *bo.Object
}

func New(logger *slog.Logger, options CreateOptions) (*Scheduler, error) {
	if options.Device == nil {
		return nil, errors.New("a kernel device is required")
	}
	if options.Screen == nil {
		return nil, errors.New("a screen layer is required")
	}
	if options.CRTC == nil {
		return nil, errors.New("a crtc layer is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	scanouts := options.Scanouts
	if scanouts == nil {
		scanouts = &Table{}
	}
	return &Scheduler{
		device:   options.Device,
		screen:   options.Screen,
		crtc:     options.CRTC,
		events:   options.Events,
		scanouts: scanouts,
		fallback: options.Fallback,
		logger:   logger,
	}, nil
}

// Scanouts returns the scheduler's scanout table.
func (s *Scheduler) Scanouts() *Table {
	return s.scanouts
}

// PendingFlips reports the number of in-flight swap commands.
func (s *Scheduler) PendingFlips() int {
	return s.pendingFlips
}

// HandleResize records a pending output reconfiguration (resize or hotplug).
// Until the next blit completes, swaps degrade to copies and drawables are
// told to reallocate their buffers.
func (s *Scheduler) HandleResize() {
	s.hasResized = true
}

// canFlip reports whether the drawable can be presented by a page flip: it
// must be a top-level window whose back buffer matches it exactly, aligned
// with a configured display output.
func (s *Scheduler) canFlip(d Drawable, back *bo.Object) bool {
	if !d.IsWindow() {
		return false
	}
	if back != nil && (back.Width() != uint32(d.Width()) || back.Height() != uint32(d.Height())) {
		return false
	}
	return s.scanouts.FromDrawable(d) != nil
}

// resolvePixmap returns the pixmap a buffer currently stands for. The front
// role is resolved through the screen on every request: a window's backing
// pixmap may have been reallocated since the buffer was created, and the
// command must bind to the current one.
func (s *Scheduler) resolvePixmap(d Drawable, b *Buffer) Pixmap {
	if b.attachment == AttachFrontLeft {
		return s.screen.PixmapOf(d)
	}
	return b.pixmap
}

// Schedule requests presentation of src into dst for the given drawable. The
// completion callback fires exactly once, possibly before Schedule returns
// (synchronous blit, fake flip, rejected flip).
func (s *Scheduler) Schedule(client ClientID, d Drawable, dst, src *Buffer, fn CompletionFunc, data any) error {
	cmd := &Command{
		client: client,
		drawID: d.ID(),
		srcPix: s.resolvePixmap(d, src),
		dstPix: s.resolvePixmap(d, dst),
		x:      d.X(),
		y:      d.Y(),
		fn:     fn,
		data:   data,
	}

	srcBO := cmd.srcPix.BufferObject()
	flippable := s.canFlip(d, srcBO)

	// Retarget the destination role: the front either becomes the output's
	// own scanout buffer (flip) or the shared fallback scanout (blit).
	var front *bo.Object
	if flippable && !s.hasResized {
		front = s.scanouts.FromDrawable(d).BO
	} else {
		front = s.fallback
	}
	if front != nil && front != cmd.dstPix.BufferObject() {
		old := cmd.dstPix.BufferObject()
		front.Ref()
		cmd.dstPix.SetBufferObject(front)
		old.Unref()
	}
	if flippable && !s.hasResized {
		if err := s.crtc.SetFlipMode(); err != nil {
			return errors.Wrap(err, "could not set flip mode")
		}
	} else {
		if err := s.crtc.SetBlitMode(); err != nil {
			return errors.Wrap(err, "could not set blit mode")
		}
	}

	// Hold both pixmaps for the lifetime of the command; the drawable may be
	// destroyed while the flip is in flight.
	cmd.srcPix.Ref()
	cmd.dstPix.Ref()
	s.pendingFlips++

	s.noteCapabilityTransition(d, dst, src, flippable)

	srcFB := srcBO.FB()
	dstFB := cmd.dstPix.BufferObject().FB()

	if srcFB != 0 && dstFB != 0 && flippable && !s.hasResized {
		return s.flip(cmd, d, srcFB)
	}

	// Fallback to blit. A pending resize is consumed here: the copy brings the
	// framebuffer up to date with the new geometry and flipping may resume on
	// the next frame.
	s.screen.CopyArea(d, dst, src)
	cmd.kind = CompleteBlit
	s.Complete(cmd)
	s.hasResized = false
	return nil
}

func (s *Scheduler) flip(cmd *Command, d Drawable, srcFB uint32) error {
	cmd.kind = CompleteFlip

	scheduled, err := s.crtc.PageFlip(d, srcFB, cmd)
	if err != nil {
		// The hardware rejected the flip. The command still runs its full
		// completion path, flagged as failed, without touching scanout
		// validity; subsequent requests are unaffected.
		s.logger.Error("page flip submission failed",
			slog.Int64("drawable", int64(cmd.drawID)), slog.Any("error", err))
		cmd.flags |= commandFailed
		s.Complete(cmd)
		return errors.Wrap(err, "could not schedule page flip")
	}
	if scheduled == 0 {
		cmd.flags |= commandFakeFlip
		s.Complete(cmd)
		return nil
	}
	cmd.pending = scheduled
	return nil
}

// noteCapabilityTransition bumps the drawable's serial number when it has
// moved between flippable and non-flippable (or an output reconfiguration is
// pending), forcing the buffer layer to reallocate both buffers next frame.
func (s *Scheduler) noteCapabilityTransition(d Drawable, dst, src *Buffer, flippable bool) {
	now := 0
	if flippable {
		now = 1
	}
	if (src.prevCanFlip != -1 && src.prevCanFlip != now) ||
		(dst.prevCanFlip != -1 && dst.prevCanFlip != now) ||
		s.hasResized {
		s.screen.BumpSerial(d)
	}
	src.prevCanFlip = now
	dst.prevCanFlip = now
}

// Complete reconciles one output's completion report for a command. It is a
// no-op until the last scheduled output reports in; then the drawable is
// re-resolved by its stable identifier, buffers are exchanged for real flips,
// the completion callback fires and the command's resources are released.
//
// A drawable destroyed mid-flight skips the exchange and the callback but
// still releases every resource.
func (s *Scheduler) Complete(cmd *Command) {
	cmd.pending--
	if cmd.pending > 0 {
		return
	}

	d := s.screen.LookupDrawable(cmd.drawID)
	if d != nil {
		if !cmd.Failed() {
			if cmd.kind == CompleteFlip && !cmd.FakeFlip() {
				exchangePixmaps(cmd.srcPix, cmd.dstPix)
			}

			cmd.fn(cmd.client, d, 0, 0, cmd.notifyKind(), cmd.data)

			if cmd.kind == CompleteBlit {
				s.scanouts.InvalidateAll()
			} else {
				dstBO := cmd.dstPix.BufferObject()
				if !cmd.FakeFlip() {
					s.scanouts.Set(cmd.x, cmd.y, dstBO)
				}
				s.scanouts.Validate(dstBO)
			}
		} else {
			cmd.fn(cmd.client, d, 0, 0, CompleteFailed, cmd.data)
		}
	}

	// Release paths run regardless of success, failure or a destroyed
	// drawable.
	cmd.srcPix.Unref()
	cmd.dstPix.Unref()
	s.pendingFlips--
}

// Drain blocks until every in-flight swap command has completed. It must be
// called before the display connection is torn down; no command may be
// dropped while a flip is outstanding. There is no timeout: the wait is
// bounded only by the hardware delivering its completion events.
func (s *Scheduler) Drain() error {
	for s.pendingFlips > 0 {
		s.logger.Debug("waiting for pending flips", slog.Int("pending", s.pendingFlips))
		if s.events == nil {
			return errors.New("pending flips outstanding with no event source to drain them")
		}
		if err := s.events.WaitForEvent(); err != nil {
			return errors.Wrap(err, "error while draining pending flips")
		}
	}
	return nil
}
