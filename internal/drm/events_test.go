package drm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func flipEventBytes(userData uint64, sec, usec, seq, crtc uint32) []byte {
	buf := make([]byte, eventHeaderLen+vblankEventLen)
	binary.NativeEndian.PutUint32(buf[0:4], eventFlipComplete)
	binary.NativeEndian.PutUint32(buf[4:8], uint32(len(buf)))
	binary.NativeEndian.PutUint64(buf[8:16], userData)
	binary.NativeEndian.PutUint32(buf[16:20], sec)
	binary.NativeEndian.PutUint32(buf[20:24], usec)
	binary.NativeEndian.PutUint32(buf[24:28], seq)
	binary.NativeEndian.PutUint32(buf[28:32], crtc)
	return buf
}

func TestParseEventsDispatchesFlipCompletions(t *testing.T) {
	buf := flipEventBytes(0xdeadbeef, 2, 500, 41, 7)
	buf = append(buf, flipEventBytes(0xcafe, 0, 0, 42, 8)...)

	var got []uint64
	var seqs []uint32
	err := parseEvents(buf, func(userData uint64, ust uint64, sequence uint32, crtcID uint32) {
		got = append(got, userData)
		seqs = append(seqs, sequence)
		if userData == 0xdeadbeef {
			require.Equal(t, uint64(2000500), ust)
			require.Equal(t, uint32(7), crtcID)
		}
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{0xdeadbeef, 0xcafe}, got)
	require.Equal(t, []uint32{41, 42}, seqs)
}

func TestParseEventsSkipsUnknownTypes(t *testing.T) {
	unknown := make([]byte, 16)
	binary.NativeEndian.PutUint32(unknown[0:4], eventVBlank)
	binary.NativeEndian.PutUint32(unknown[4:8], 16)
	buf := append(unknown, flipEventBytes(1, 0, 0, 1, 0)...)

	calls := 0
	err := parseEvents(buf, func(uint64, uint64, uint32, uint32) { calls++ })
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestParseEventsRejectsTruncatedEvent(t *testing.T) {
	buf := flipEventBytes(1, 0, 0, 1, 0)
	binary.NativeEndian.PutUint32(buf[4:8], 64)

	err := parseEvents(buf, nil)
	require.Error(t, err)
}

func TestIoctlRequestCodes(t *testing.T) {
	// These must stay bit-exact against the kernel uapi.
	require.Equal(t, uintptr(0xc02064b2), uintptr(ioctlModeCreateDumb))
	require.Equal(t, uintptr(0xc01064b3), uintptr(ioctlModeMapDumb))
	require.Equal(t, uintptr(0xc00464b4), uintptr(ioctlModeDestroyDumb))
	require.Equal(t, uintptr(0xc01c64ae), uintptr(ioctlModeAddFB))
	require.Equal(t, uintptr(0xc06864b8), uintptr(ioctlModeAddFB2))
	require.Equal(t, uintptr(0xc00464af), uintptr(ioctlModeRmFB))
	require.Equal(t, uintptr(0xc008640a), uintptr(ioctlGemFlink))
	require.Equal(t, uintptr(0xc018643a), uintptr(ioctlWaitVBlank))
	require.Equal(t, uintptr(0xc01864b0), uintptr(ioctlModePageFlip))
	require.Equal(t, uintptr(0xc0086448), uintptr(ioctlCPUAcquire))
	require.Equal(t, uintptr(0xc0046449), uintptr(ioctlCPURelease))
}

func TestFourCC(t *testing.T) {
	require.Equal(t, "XR24", FormatXRGB8888.String())
	require.Equal(t, FourCC(0x34325258), FormatXRGB8888)
}
