package swap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanoutTableConfigureUntilFull(t *testing.T) {
	h := newHarness(t)
	table := &Table{}

	for i := 0; i < MaxScanouts; i++ {
		slot := table.Configure(i*100, 0, 16, 16, h.newBO(t, 16, 16))
		require.NotNil(t, slot)
		require.Equal(t, i*100, slot.X)
	}
	require.Nil(t, table.Configure(900, 0, 16, 16, h.newBO(t, 16, 16)))
}

func TestScanoutTableFromDrawableRequiresExactGeometry(t *testing.T) {
	h := newHarness(t)
	table := &Table{}
	table.Configure(100, 50, 16, 16, h.newBO(t, 16, 16))

	match := &fakeDrawable{window: true, x: 100, y: 50, w: 16, h: 16}
	require.NotNil(t, table.FromDrawable(match))

	for _, d := range []*fakeDrawable{
		{x: 101, y: 50, w: 16, h: 16},
		{x: 100, y: 50, w: 15, h: 16},
		{x: 100, y: 50, w: 16, h: 17},
		{x: 0, y: 0, w: 16, h: 16},
	} {
		require.Nil(t, table.FromDrawable(d))
	}
}

func TestScanoutTableSetRepointsByPosition(t *testing.T) {
	h := newHarness(t)
	table := &Table{}
	first := h.newBO(t, 16, 16)
	second := h.newBO(t, 16, 16)

	table.Configure(0, 0, 16, 16, first)
	table.Set(0, 0, second)
	require.Same(t, second, table.Slots()[0].BO)

	// Positions without a configured slot are ignored.
	table.Set(500, 500, first)
	for _, slot := range table.Slots() {
		require.NotSame(t, first, slot.BO)
	}
}

func TestScanoutTableValidity(t *testing.T) {
	h := newHarness(t)
	table := &Table{}
	a := h.newBO(t, 16, 16)
	b := h.newBO(t, 16, 16)
	table.Configure(0, 0, 16, 16, a)
	table.Configure(16, 0, 16, 16, b)

	table.Validate(b)
	require.False(t, table.Slots()[0].Valid)
	require.True(t, table.Slots()[1].Valid)

	table.InvalidateAll()
	for _, slot := range table.Slots() {
		require.False(t, slot.Valid)
	}
}
