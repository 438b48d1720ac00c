package bo

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/gokms/armsoc/internal/drm"
)

// Object is a reference-counted, display-capable buffer allocation. Every
// Object is bound to a framebuffer identity at creation and stays bound until
// the last reference is dropped; destruction always unbinds the framebuffer
// before freeing the allocation.
type Object struct {
	dev    *Device
	handle uint32
	size   uint64
	fbID   uint32

	width  uint32
	height uint32
	pitch  uint32
	depth  uint8
	bpp    uint8
	format drm.FourCC

	refcnt     int
	exclusive  bool
	acquireCnt int
	dirty      bool

	flink   uint32
	mapping []byte
}

// pitchFor aligns rows to 64 bytes, a requirement of the GPU's texture units.
func pitchFor(width uint32, bpp uint8) uint32 {
	return ((((width*uint32(bpp) + 7) / 8) + 63) / 64) * 64
}

func newObject(dev *Device, width, height uint32, depth, bpp uint8, format drm.FourCC) (*Object, error) {
	logger := dev.logger
	pitch := pitchFor(width, bpp)

	handle, size, err := dev.raw.CreateDumb(pitch, height)
	if err != nil {
		return nil, errors.Wrapf(err, "create of %dx%d buffer (pitch: %d) failed", width, height, pitch)
	}
	logger.Debug("created buffer object",
		slog.Int64("handle", int64(handle)), slog.Uint64("size", size))

	var fbID uint32
	if depth != 0 {
		fbID, err = dev.raw.AddFB(width, height, depth, bpp, pitch, handle)
		if err != nil {
			err = errors.Wrapf(err, "add FB {%dx%d depth: %d bpp: %d pitch: %d} failed",
				width, height, depth, bpp, pitch)
		}
	} else {
		fbID, err = dev.raw.AddFB2(width, height, format,
			[4]uint32{handle}, [4]uint32{pitch}, [4]uint32{})
		if err != nil {
			err = errors.Wrapf(err, "add FB {%dx%d format: %s pitch: %d} failed",
				width, height, format, pitch)
		}
	}
	if err != nil {
		// Roll back the allocation before reporting the bind failure.
		if destroyErr := dev.raw.DestroyDumb(handle); destroyErr != nil {
			logger.Error("could not destroy buffer after framebuffer bind failure",
				slog.Int64("handle", int64(handle)), slog.Any("error", destroyErr))
		}
		return nil, err
	}
	logger.Debug("bound framebuffer",
		slog.Int64("handle", int64(handle)), slog.Int64("fb", int64(fbID)))

	o := &Object{
		dev:    dev,
		handle: handle,
		size:   size,
		fbID:   fbID,
		width:  width,
		height: height,
		pitch:  pitch,
		depth:  depth,
		bpp:    bpp,
		format: format,
		refcnt: 1,
		dirty:  true,
	}
	dev.objects.Put(handle, o)
	return o, nil
}

// NewWithDepth allocates a buffer and binds it as a legacy framebuffer with an
// explicit color depth. depth must be nonzero.
func NewWithDepth(dev *Device, width, height uint32, depth, bpp uint8) (*Object, error) {
	if depth == 0 {
		return nil, errors.New("legacy framebuffer binding requires a nonzero depth")
	}
	return newObject(dev, width, height, depth, bpp, 0)
}

// NewWithFormat allocates a buffer and binds it as a framebuffer with an
// explicit four-character pixel format code.
func NewWithFormat(dev *Device, width, height uint32, format drm.FourCC, bpp uint8) (*Object, error) {
	return newObject(dev, width, height, 0, bpp, format)
}

// Ref takes an additional reference. The object must still be live.
func (o *Object) Ref() {
	if o.refcnt <= 0 {
		panic("reference to a dead buffer object")
	}
	o.refcnt++
}

// Unref drops one reference and destroys the object when the count reaches
// zero: the framebuffer identity is removed first, then the allocation freed.
func (o *Object) Unref() {
	if o == nil {
		return
	}
	if o.refcnt <= 0 {
		panic("unreference of a dead buffer object")
	}
	o.refcnt--
	if o.refcnt == 0 {
		o.destroy()
	}
}

func (o *Object) destroy() {
	logger := o.dev.logger

	if err := o.dev.raw.RmFB(o.fbID); err != nil {
		// A framebuffer that outlives its allocation is unrecoverable
		// resource-tracking corruption.
		logger.LogAttrs(context.Background(), slog.LevelError, "could not remove framebuffer on destroy",
			slog.Int64("handle", int64(o.handle)),
			slog.Int64("fb", int64(o.fbID)),
			slog.Any("error", err))
		panic("framebuffer removal failed during buffer destruction")
	}

	if o.mapping != nil {
		if err := o.dev.raw.Munmap(o.mapping); err != nil {
			logger.Error("could not unmap buffer on destroy",
				slog.Int64("handle", int64(o.handle)), slog.Any("error", err))
		}
		o.mapping = nil
	}

	if err := o.dev.raw.DestroyDumb(o.handle); err != nil {
		logger.Error("could not destroy buffer allocation",
			slog.Int64("handle", int64(o.handle)), slog.Any("error", err))
	}

	o.dev.objects.Delete(o.handle)
	o.fbID = 0
}

// FlinkName returns a process-external sharing name for the allocation,
// fetching it from the kernel on first use and caching it afterwards.
func (o *Object) FlinkName() (uint32, error) {
	if o.flink != 0 {
		return o.flink, nil
	}
	name, err := o.dev.raw.Flink(o.handle)
	if err != nil {
		return 0, errors.Wrapf(err, "could not get sharing name for buffer %d", o.handle)
	}
	o.flink = name
	return name, nil
}

// Map returns a CPU-visible mapping of the buffer, created on first use and
// cached for the object's lifetime.
func (o *Object) Map() ([]byte, error) {
	if o.mapping != nil {
		return o.mapping, nil
	}
	offset, err := o.dev.raw.MapOffset(o.handle)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get map offset for buffer %d", o.handle)
	}
	data, err := o.dev.raw.Mmap(offset, o.size)
	if err != nil {
		return nil, errors.Wrapf(err, "could not map buffer %d", o.handle)
	}
	o.mapping = data
	return data, nil
}

// Dirty reports whether the buffer has been write-acquired since the last
// MarkClean. The flag is never cleared implicitly; consumers of a write must
// call MarkClean themselves.
func (o *Object) Dirty() bool {
	return o.dirty
}

func (o *Object) MarkClean() {
	o.dirty = false
}

func (o *Object) Handle() uint32       { return o.handle }
func (o *Object) Size() uint64         { return o.size }
func (o *Object) FB() uint32           { return o.fbID }
func (o *Object) Width() uint32        { return o.width }
func (o *Object) Height() uint32       { return o.height }
func (o *Object) Pitch() uint32        { return o.pitch }
func (o *Object) Depth() uint8         { return o.depth }
func (o *Object) BitsPerPixel() uint8  { return o.bpp }
func (o *Object) Format() drm.FourCC   { return o.format }
func (o *Object) RefCount() int        { return o.refcnt }

// BytesPerPixel rounds the pixel size up to whole bytes.
func (o *Object) BytesPerPixel() uint32 {
	return (uint32(o.bpp) + 7) / 8
}
