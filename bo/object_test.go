package bo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gokms/armsoc/internal/drm"
	"github.com/gokms/armsoc/internal/drm/mocks"
)

func testDevice(t *testing.T) (*mocks.MockDevice, *Device) {
	ctrl := gomock.NewController(t)
	raw := mocks.NewMockDevice(ctrl)
	return raw, NewDevice(raw, nil)
}

func expectAlloc(raw *mocks.MockDevice, handle, pitch uint32, height uint32, fbID uint32) {
	raw.EXPECT().CreateDumb(pitch, height).
		Return(handle, uint64(pitch)*uint64(height), nil)
	raw.EXPECT().AddFB(gomock.Any(), height, gomock.Any(), gomock.Any(), pitch, handle).
		Return(fbID, nil)
}

func expectDestroy(raw *mocks.MockDevice, handle, fbID uint32) {
	raw.EXPECT().RmFB(fbID).Return(nil)
	raw.EXPECT().DestroyDumb(handle).Return(nil)
}

func TestNewWithDepthBindsLegacyFramebuffer(t *testing.T) {
	raw, dev := testDevice(t)

	raw.EXPECT().CreateDumb(uint32(7680), uint32(1080)).
		Return(uint32(5), uint64(7680*1080), nil)
	raw.EXPECT().AddFB(uint32(1920), uint32(1080), uint8(24), uint8(32), uint32(7680), uint32(5)).
		Return(uint32(42), nil)

	o, err := NewWithDepth(dev, 1920, 1080, 24, 32)
	require.NoError(t, err)

	require.Equal(t, uint32(7680), o.Pitch())
	require.Equal(t, uint64(7680*1080), o.Size())
	require.Equal(t, uint32(42), o.FB())
	require.Equal(t, 1, o.RefCount())
	require.True(t, o.Dirty())
	require.Equal(t, uint32(4), o.BytesPerPixel())
	require.Equal(t, 1, dev.LiveObjectCount())

	expectDestroy(raw, 5, 42)
	o.Unref()
	require.Equal(t, 0, dev.LiveObjectCount())
}

func TestNewWithFormatBindsSinglePlane(t *testing.T) {
	raw, dev := testDevice(t)

	raw.EXPECT().CreateDumb(uint32(2560), uint32(480)).
		Return(uint32(9), uint64(2560*480), nil)
	raw.EXPECT().AddFB2(uint32(640), uint32(480), drm.FormatXRGB8888,
		[4]uint32{9}, [4]uint32{2560}, [4]uint32{}).
		Return(uint32(7), nil)

	o, err := NewWithFormat(dev, 640, 480, drm.FormatXRGB8888, 32)
	require.NoError(t, err)
	require.Equal(t, drm.FormatXRGB8888, o.Format())
	require.Equal(t, uint8(0), o.Depth())

	expectDestroy(raw, 9, 7)
	o.Unref()
}

func TestPitchRowAlignment(t *testing.T) {
	cases := []struct {
		width uint32
		bpp   uint8
		pitch uint32
	}{
		{1920, 32, 7680},
		{1, 32, 64},
		{100, 32, 448},
		{33, 16, 128},
		{3, 1, 64},
		{641, 24, 1984},
	}
	for _, tc := range cases {
		pitch := pitchFor(tc.width, tc.bpp)
		require.Equal(t, tc.pitch, pitch, "width %d bpp %d", tc.width, tc.bpp)
		require.Zero(t, pitch%64)
		require.GreaterOrEqual(t, pitch, tc.width*uint32(tc.bpp)/8)
	}
}

func TestBindFailureRollsBackAllocation(t *testing.T) {
	raw, dev := testDevice(t)

	raw.EXPECT().CreateDumb(gomock.Any(), gomock.Any()).
		Return(uint32(3), uint64(64*64), nil)
	raw.EXPECT().AddFB(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uint32(0), errors.New("geometry rejected"))
	raw.EXPECT().DestroyDumb(uint32(3)).Return(nil)

	o, err := NewWithDepth(dev, 16, 64, 24, 32)
	require.Error(t, err)
	require.ErrorContains(t, err, "geometry rejected")
	require.Nil(t, o)
	require.Equal(t, 0, dev.LiveObjectCount())
	require.NoError(t, dev.Close())
}

func TestAllocationFailurePropagates(t *testing.T) {
	raw, dev := testDevice(t)

	raw.EXPECT().CreateDumb(gomock.Any(), gomock.Any()).
		Return(uint32(0), uint64(0), errors.New("cannot allocate memory"))

	_, err := NewWithDepth(dev, 16, 16, 24, 32)
	require.Error(t, err)
	require.ErrorContains(t, err, "cannot allocate memory")
}

func TestZeroDepthLegacyBindingRejected(t *testing.T) {
	_, dev := testDevice(t)

	_, err := NewWithDepth(dev, 16, 16, 0, 32)
	require.Error(t, err)
}

func TestRefcountDestroysExactlyOnce(t *testing.T) {
	raw, dev := testDevice(t)

	expectAlloc(raw, 4, 64, 16, 11)
	o, err := NewWithDepth(dev, 16, 16, 24, 32)
	require.NoError(t, err)

	o.Ref()
	o.Ref()
	require.Equal(t, 3, o.RefCount())

	o.Unref()
	o.Unref()
	require.Equal(t, 1, dev.LiveObjectCount())

	expectDestroy(raw, 4, 11)
	o.Unref()
	require.Equal(t, 0, dev.LiveObjectCount())

	require.Panics(t, func() { o.Unref() })
	require.Panics(t, func() { o.Ref() })
}

func TestUnrefPanicsWhenFramebufferRemovalFails(t *testing.T) {
	raw, dev := testDevice(t)

	expectAlloc(raw, 4, 64, 16, 11)
	o, err := NewWithDepth(dev, 16, 16, 24, 32)
	require.NoError(t, err)

	raw.EXPECT().RmFB(uint32(11)).Return(errors.New("busy"))
	require.Panics(t, func() { o.Unref() })
}

func TestFlinkNameFetchedOnceAndCached(t *testing.T) {
	raw, dev := testDevice(t)

	expectAlloc(raw, 4, 64, 16, 11)
	o, err := NewWithDepth(dev, 16, 16, 24, 32)
	require.NoError(t, err)

	raw.EXPECT().Flink(uint32(4)).Return(uint32(77), nil).Times(1)

	name, err := o.FlinkName()
	require.NoError(t, err)
	require.Equal(t, uint32(77), name)

	name, err = o.FlinkName()
	require.NoError(t, err)
	require.Equal(t, uint32(77), name)

	expectDestroy(raw, 4, 11)
	o.Unref()
}

func TestMapCreatedOnceAndCached(t *testing.T) {
	raw, dev := testDevice(t)

	expectAlloc(raw, 4, 64, 16, 11)
	o, err := NewWithDepth(dev, 16, 16, 24, 32)
	require.NoError(t, err)

	data := make([]byte, o.Size())
	raw.EXPECT().MapOffset(uint32(4)).Return(uint64(0x10000), nil).Times(1)
	raw.EXPECT().Mmap(uint64(0x10000), o.Size()).Return(data, nil).Times(1)

	m1, err := o.Map()
	require.NoError(t, err)
	m2, err := o.Map()
	require.NoError(t, err)
	require.Equal(t, &m1[0], &m2[0])

	raw.EXPECT().RmFB(uint32(11)).Return(nil)
	raw.EXPECT().Munmap(gomock.Any()).Return(nil)
	raw.EXPECT().DestroyDumb(uint32(4)).Return(nil)
	o.Unref()
}

func TestCloseReportsLeakedObjects(t *testing.T) {
	raw, dev := testDevice(t)

	expectAlloc(raw, 4, 64, 16, 11)
	o, err := NewWithDepth(dev, 16, 16, 24, 32)
	require.NoError(t, err)

	require.Error(t, dev.Close())

	expectDestroy(raw, 4, 11)
	o.Unref()
	require.NoError(t, dev.Close())
}
