package bo

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slog"

	"github.com/gokms/armsoc/internal/drm"
)

// Device is the per-adapter handle through which buffer objects are allocated.
// It tracks every live Object by GEM handle so that teardown can report leaked
// buffers, and is created once at driver attach time.
//
// Device and everything allocated from it expect a single-threaded caller;
// there is no internal locking.
type Device struct {
	raw     drm.Device
	logger  *slog.Logger
	objects *swiss.Map[uint32, *Object]
}

func NewDevice(raw drm.Device, logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.Default()
	}
	return &Device{
		raw:     raw,
		logger:  logger,
		objects: swiss.NewMap[uint32, *Object](8),
	}
}

// Raw exposes the underlying kernel surface for collaborating layers
// (mode-setting, swap scheduling).
func (d *Device) Raw() drm.Device {
	return d.raw
}

func (d *Device) LiveObjectCount() int {
	return d.objects.Count()
}

// Close verifies that every buffer object allocated from this device has been
// released. Remaining objects are logged and an error is returned; their
// kernel resources are deliberately left alone since freeing a buffer that is
// still referenced elsewhere would trade a leak for a use-after-free.
func (d *Device) Close() error {
	if d.objects.Count() == 0 {
		return nil
	}

	d.objects.Iter(func(handle uint32, o *Object) bool {
		d.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED BUFFER] unfreed buffer object",
			slog.Int64("handle", int64(handle)),
			slog.Int64("fb", int64(o.fbID)),
			slog.Int("refcnt", o.refcnt),
			slog.Uint64("size", o.size),
		)
		return false
	})

	return errors.Newf("%d buffer objects were not freed before device teardown", d.objects.Count())
}
