package drm

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	ioctl "github.com/daedaluz/goioctl"
	"golang.org/x/sys/unix"
)

// card is the production Device implementation over an open DRM card node.
type card struct {
	fd int
}

var _ Device = (*card)(nil)

// Open opens a DRM card node (e.g. /dev/dri/card0) and returns a Device
// issuing real ioctls against it. The caller owns the lifetime and must call
// Close when the adapter is detached.
func Open(path string) (Device, int, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, -1, errors.Wrapf(err, "could not open drm device %s", path)
	}
	return &card{fd: fd}, fd, nil
}

// FromFD wraps an already-open card node file descriptor. The descriptor is
// not duplicated; the caller keeps ownership.
func FromFD(fd int) Device {
	return &card{fd: fd}
}

func (c *card) ioctl(code uintptr, arg unsafe.Pointer) error {
	return ioctl.Ioctl(uintptr(c.fd), code, uintptr(arg))
}

func (c *card) CreateDumb(pitch, height uint32) (uint32, uint64, error) {
	// The allocation is linear bytes: request an 8bpp buffer whose width is
	// the pitch so the kernel's own pitch matches the caller's exactly.
	args := createDumbArgs{
		Height: height,
		Width:  pitch,
		BPP:    8,
	}
	if err := c.ioctl(ioctlModeCreateDumb, unsafe.Pointer(&args)); err != nil {
		return 0, 0, errors.Wrapf(err, "MODE_CREATE_DUMB(%dx%d) failed", pitch, height)
	}
	return args.Handle, args.Size, nil
}

func (c *card) DestroyDumb(handle uint32) error {
	args := destroyDumbArgs{Handle: handle}
	if err := c.ioctl(ioctlModeDestroyDumb, unsafe.Pointer(&args)); err != nil {
		return errors.Wrapf(err, "MODE_DESTROY_DUMB(%d) failed", handle)
	}
	return nil
}

func (c *card) MapOffset(handle uint32) (uint64, error) {
	args := mapDumbArgs{Handle: handle}
	if err := c.ioctl(ioctlModeMapDumb, unsafe.Pointer(&args)); err != nil {
		return 0, errors.Wrapf(err, "MODE_MAP_DUMB(%d) failed", handle)
	}
	return args.Offset, nil
}

func (c *card) Mmap(offset uint64, size uint64) ([]byte, error) {
	data, err := unix.Mmap(c.fd, int64(offset), int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap of %d bytes at 0x%x failed", size, offset)
	}
	return data, nil
}

func (c *card) Munmap(data []byte) error {
	return unix.Munmap(data)
}

func (c *card) Flink(handle uint32) (uint32, error) {
	args := gemFlinkArgs{Handle: handle}
	if err := c.ioctl(ioctlGemFlink, unsafe.Pointer(&args)); err != nil {
		return 0, errors.Wrapf(err, "GEM_FLINK(%d) failed", handle)
	}
	return args.Name, nil
}

func (c *card) AddFB(width, height uint32, depth, bpp uint8, pitch, handle uint32) (uint32, error) {
	args := fbCmdArgs{
		Width:  width,
		Height: height,
		Pitch:  pitch,
		BPP:    uint32(bpp),
		Depth:  uint32(depth),
		Handle: handle,
	}
	if err := c.ioctl(ioctlModeAddFB, unsafe.Pointer(&args)); err != nil {
		return 0, errors.Wrapf(err, "MODE_ADDFB(%dx%d depth: %d bpp: %d pitch: %d) failed",
			width, height, depth, bpp, pitch)
	}
	return args.FBID, nil
}

func (c *card) AddFB2(width, height uint32, format FourCC, handles, pitches, offsets [4]uint32) (uint32, error) {
	args := fbCmd2Args{
		Width:       width,
		Height:      height,
		PixelFormat: uint32(format),
		Handles:     handles,
		Pitches:     pitches,
		Offsets:     offsets,
	}
	if err := c.ioctl(ioctlModeAddFB2, unsafe.Pointer(&args)); err != nil {
		return 0, errors.Wrapf(err, "MODE_ADDFB2(%dx%d format: %s pitch: %d) failed",
			width, height, format, pitches[0])
	}
	return args.FBID, nil
}

func (c *card) RmFB(fbID uint32) error {
	if err := c.ioctl(ioctlModeRmFB, unsafe.Pointer(&fbID)); err != nil {
		return errors.Wrapf(err, "MODE_RMFB(%d) failed", fbID)
	}
	return nil
}

func (c *card) CPUAcquire(handle uint32, flags uint32) error {
	args := cpuAcquireArgs{Handle: handle, Flags: flags}
	if err := c.ioctl(ioctlCPUAcquire, unsafe.Pointer(&args)); err != nil {
		return errors.Wrapf(err, "GEM_CPU_ACQUIRE(%d) failed", handle)
	}
	return nil
}

func (c *card) CPURelease(handle uint32) error {
	args := cpuReleaseArgs{Handle: handle}
	if err := c.ioctl(ioctlCPURelease, unsafe.Pointer(&args)); err != nil {
		return errors.Wrapf(err, "GEM_CPU_RELEASE(%d) failed", handle)
	}
	return nil
}

func (c *card) PageFlip(crtcID, fbID uint32, flags uint32, userData uint64) error {
	args := pageFlipArgs{
		CrtcID:   crtcID,
		FBID:     fbID,
		Flags:    flags,
		UserData: userData,
	}
	if err := c.ioctl(ioctlModePageFlip, unsafe.Pointer(&args)); err != nil {
		return errors.Wrapf(err, "MODE_PAGE_FLIP(crtc: %d fb: %d) failed", crtcID, fbID)
	}
	return nil
}

func (c *card) WaitVBlank(crtcIndex int) (uint64, uint32, error) {
	args := waitVBlankArgs{
		Type: vblankRelative | (uint32(crtcIndex) << vblankHighCrtcShift & vblankHighCrtcMask),
	}
	if err := c.ioctl(ioctlWaitVBlank, unsafe.Pointer(&args)); err != nil {
		return 0, 0, errors.Wrapf(err, "WAIT_VBLANK(crtc: %d) failed", crtcIndex)
	}
	ust := uint64(args.TvalSec)*1000000 + uint64(args.TvalUsec)
	return ust, args.Sequence, nil
}

func (c *card) WaitForEvent(handler FlipHandler) error {
	fds := []unix.PollFd{{Fd: int32(c.fd), Events: unix.POLLIN}}
	for {
		_, err := unix.Poll(fds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "poll on drm fd failed")
		}
		break
	}

	buf := make([]byte, 1024)
	n, err := unix.Read(c.fd, buf)
	if err != nil {
		return errors.Wrap(err, "read of drm events failed")
	}
	return parseEvents(buf[:n], handler)
}
