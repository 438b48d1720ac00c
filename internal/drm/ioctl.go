package drm

import (
	"unsafe"

	ioctl "github.com/daedaluz/goioctl"
)

// DRM ioctl type byte ('d') and the start of the driver-private command range.
const (
	drmIoctlBase    = 0x64
	drmCommandBase  = 0x40
	cpuAcquireIndex = 0x08
	cpuReleaseIndex = 0x09
)

// Argument structs mirror the kernel uapi layouts field for field. All fields
// are naturally aligned, so the Go structs can be handed to the kernel
// directly without repacking.

type createDumbArgs struct {
	Height uint32
	Width  uint32
	BPP    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

type mapDumbArgs struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

type destroyDumbArgs struct {
	Handle uint32
}

type fbCmdArgs struct {
	FBID   uint32
	Width  uint32
	Height uint32
	Pitch  uint32
	BPP    uint32
	Depth  uint32
	Handle uint32
}

type fbCmd2Args struct {
	FBID        uint32
	Width       uint32
	Height      uint32
	PixelFormat uint32
	Flags       uint32
	Handles     [4]uint32
	Pitches     [4]uint32
	Offsets     [4]uint32
	Modifier    [4]uint64
}

type gemFlinkArgs struct {
	Handle uint32
	Name   uint32
}

// waitVBlankArgs overlays the kernel's request/reply union: the request writes
// Type and Sequence (the signal word aliases TvalSec and stays zero), the
// reply fills all four fields.
type waitVBlankArgs struct {
	Type     uint32
	Sequence uint32
	TvalSec  int64
	TvalUsec int64
}

type pageFlipArgs struct {
	CrtcID   uint32
	FBID     uint32
	Flags    uint32
	Reserved uint32
	UserData uint64
}

// cpuAcquireArgs and cpuReleaseArgs drive the driver-private CPU access guard.
// Acquire carries a flags word: CPUAcquireShared or CPUAcquireExclusive.
type cpuAcquireArgs struct {
	Handle uint32
	Flags  uint32
}

type cpuReleaseArgs struct {
	Handle uint32
}

// Vblank request type bits.
const (
	vblankRelative      uint32 = 0x1
	vblankHighCrtcShift        = 1
	vblankHighCrtcMask  uint32 = 0x3e
)

var (
	ioctlModeCreateDumb  = ioctl.IOWR(drmIoctlBase, 0xB2, unsafe.Sizeof(createDumbArgs{}))
	ioctlModeMapDumb     = ioctl.IOWR(drmIoctlBase, 0xB3, unsafe.Sizeof(mapDumbArgs{}))
	ioctlModeDestroyDumb = ioctl.IOWR(drmIoctlBase, 0xB4, unsafe.Sizeof(destroyDumbArgs{}))
	ioctlModeAddFB       = ioctl.IOWR(drmIoctlBase, 0xAE, unsafe.Sizeof(fbCmdArgs{}))
	ioctlModeAddFB2      = ioctl.IOWR(drmIoctlBase, 0xB8, unsafe.Sizeof(fbCmd2Args{}))
	ioctlModeRmFB        = ioctl.IOWR(drmIoctlBase, 0xAF, unsafe.Sizeof(destroyDumbArgs{}))
	ioctlGemFlink        = ioctl.IOWR(drmIoctlBase, 0x0A, unsafe.Sizeof(gemFlinkArgs{}))
	ioctlWaitVBlank      = ioctl.IOWR(drmIoctlBase, 0x3A, unsafe.Sizeof(waitVBlankArgs{}))
	ioctlModePageFlip    = ioctl.IOWR(drmIoctlBase, 0xB0, unsafe.Sizeof(pageFlipArgs{}))

	ioctlCPUAcquire = ioctl.IOWR(drmIoctlBase, drmCommandBase+cpuAcquireIndex, unsafe.Sizeof(cpuAcquireArgs{}))
	ioctlCPURelease = ioctl.IOWR(drmIoctlBase, drmCommandBase+cpuReleaseIndex, unsafe.Sizeof(cpuReleaseArgs{}))
)
