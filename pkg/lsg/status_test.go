package lsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIsPureFunctionOfRaw(t *testing.T) {
	raws := []uint32{
		0,
		0x00000001,
		0x00000047,
		0x8000007F,
		0xFFFFFFFF,
	}
	for _, raw := range raws {
		a := Status(raw)
		b := Status(raw)
		assert.Equal(t, a.Snapshot(), b.Snapshot(), "raw=0x%08X", raw)
		assert.Equal(t, a.String(), b.String(), "raw=0x%08X", raw)
	}
}

func TestStatusPredicates(t *testing.T) {
	s := Status(0x80000000 | 0x01 | 0x02 | 0x04 | 0x40)

	assert.True(t, s.Invalid())
	assert.True(t, s.Connected())
	assert.True(t, s.Open())
	assert.True(t, s.Sweeping())
	assert.False(t, s.SweepingUp())
	assert.False(t, s.RepeatingSweep())
	assert.False(t, s.SweepingBidirectional())
	assert.True(t, s.PLLLocked())
}

func TestStatusSnapshotNamesEveryFlag(t *testing.T) {
	snap := Status(0).Snapshot()
	require.Len(t, snap, 8)
	for _, name := range []string{
		"invalid", "connected", "open", "sweeping",
		"sweeping_up", "repeating_sweep", "sweeping_bidirectional", "pll_locked",
	} {
		v, ok := snap[name]
		require.True(t, ok, "missing predicate %s", name)
		assert.False(t, v)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", Status(0).String())
	assert.Equal(t, "connected|open", Status(0x03).String())
	assert.Equal(t, "invalid", Status(0x80000000).String())
}
