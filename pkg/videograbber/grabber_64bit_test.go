//go:build amd64 || arm64 || riscv64

package videograbber

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappedSetupOutOfRange(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{math.MaxInt32 + 1, 720},
		{1280, math.MaxInt32 + 1},
		{math.MinInt32 - 1, 720},
		{CorrectWidth(1280, 1<<40, 1), 1 << 40},
	}

	for _, test := range tests {
		ses := &fakeSession{frame: newFrame(1280, 720)}
		m := &Mapped{Open: ses.opener()}

		err := m.Grab(test.width, test.height, nil)
		require.ErrorIs(t, err, ErrSetup, "%dx%d", test.width, test.height)
		require.Empty(t, ses.setups)
		require.Equal(t, 0, ses.maps)
		require.Equal(t, 1, ses.closes)
	}
}

func TestBufferedSetupOutOfRange(t *testing.T) {
	ses := &fakeSession{}
	alloc := &countingAllocator{}
	b := &Buffered{Open: ses.opener(), Alloc: alloc}

	err := b.Grab(CorrectWidth(1280, 1<<40, 1), 1<<40, nil)
	require.ErrorIs(t, err, ErrSetup)
	assert.Empty(t, ses.setups)
	assert.Equal(t, 0, alloc.allocs)
	assert.Equal(t, 1, ses.closes)
}
