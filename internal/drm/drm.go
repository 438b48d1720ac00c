package drm

//go:generate mockgen -source=drm.go -destination=mocks/drm.go -package=mocks

// FourCC is a four-character pixel format code as used by the KMS framebuffer
// interface (little-endian packing, first character in the low byte).
type FourCC uint32

func NewFourCC(a, b, c, d byte) FourCC {
	return FourCC(a) | FourCC(b)<<8 | FourCC(c)<<16 | FourCC(d)<<24
}

// Common scanout formats.
var (
	FormatXRGB8888 = NewFourCC('X', 'R', '2', '4')
	FormatARGB8888 = NewFourCC('A', 'R', '2', '4')
	FormatRGB565   = NewFourCC('R', 'G', '1', '6')
)

func (f FourCC) String() string {
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
}

// CPU access guard flags for the acquire request. The kernel serializes CPU
// access against the display hardware; shared grants concurrent readers,
// exclusive a single writer.
const (
	CPUAcquireShared    uint32 = 0x0
	CPUAcquireExclusive uint32 = 0x1
)

// Page flip request flags.
const (
	PageFlipEvent uint32 = 0x01
	PageFlipAsync uint32 = 0x02
)

// FlipHandler receives one hardware flip-completion event. userData is the
// value passed to PageFlip, ust is the vblank timestamp in microseconds.
type FlipHandler func(userData uint64, ust uint64, sequence uint32, crtcID uint32)

// Device is the kernel display device surface used by the buffer-object and
// swap layers. The production implementation issues ioctls against an open
// DRM card node; tests substitute the generated mock.
//
// All methods are expected to be called from a single goroutine.
type Device interface {
	// CreateDumb allocates a linear scanout-capable buffer of pitch*height
	// bytes and returns its GEM handle. pitch is in bytes and must carry any
	// alignment the caller requires; the allocation is sized exactly to it.
	CreateDumb(pitch, height uint32) (handle uint32, size uint64, err error)
	DestroyDumb(handle uint32) error

	// MapOffset returns the fake mmap offset for a dumb buffer, suitable for
	// passing to Mmap against the card node.
	MapOffset(handle uint32) (uint64, error)
	Mmap(offset uint64, size uint64) ([]byte, error)
	Munmap(data []byte) error

	// Flink returns a process-external sharing name for the buffer.
	Flink(handle uint32) (uint32, error)

	// AddFB binds a buffer as a legacy single-format framebuffer.
	AddFB(width, height uint32, depth, bpp uint8, pitch, handle uint32) (uint32, error)
	// AddFB2 binds a buffer with an explicit four-character format code. Up to
	// four planes may be described; unused planes carry zero handles.
	AddFB2(width, height uint32, format FourCC, handles, pitches, offsets [4]uint32) (uint32, error)
	RmFB(fbID uint32) error

	// CPUAcquire and CPURelease drive the driver-private CPU access guard.
	// Pairing is the caller's responsibility; the kernel is not assumed to
	// enforce it.
	CPUAcquire(handle uint32, flags uint32) error
	CPURelease(handle uint32) error

	// PageFlip schedules a flip of crtcID to fbID at the next vertical blank.
	// With PageFlipEvent set, completion is reported through WaitForEvent with
	// the given userData.
	PageFlip(crtcID, fbID uint32, flags uint32, userData uint64) error

	// WaitVBlank returns the current vblank timestamp in microseconds and the
	// frame sequence counter for the given crtc index.
	WaitVBlank(crtcIndex int) (ust uint64, sequence uint32, err error)

	// WaitForEvent blocks until at least one event is read from the card node
	// and dispatches any flip-completion events to handler.
	WaitForEvent(handler FlipHandler) error
}
