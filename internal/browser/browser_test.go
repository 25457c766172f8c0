package browser

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters() []rune {
	out := make([]rune, 26)
	for i := range out {
		out[i] = rune('A' + i)
	}
	return out
}

func TestBrowserStartsAtFirstEntry(t *testing.T) {
	b := New(letters(), nil)
	assert.Equal(t, 0, b.Position())
	assert.Equal(t, 'A', b.Current())
	assert.False(t, b.CanPrevious())
	assert.True(t, b.CanNext())
}

func TestPreviousAtStartIsNoop(t *testing.T) {
	calls := 0
	b := New(letters(), func(State[rune]) { calls++ })
	assert.False(t, b.Previous())
	assert.Equal(t, 'A', b.Current())
	assert.Zero(t, calls)
}

func TestNextAtEndIsNoop(t *testing.T) {
	b := New(letters(), nil)
	require.True(t, b.Last())
	assert.Equal(t, 'Z', b.Current())
	assert.False(t, b.Next())
	assert.Equal(t, 'Z', b.Current())
	assert.True(t, b.CanPrevious())
	assert.False(t, b.CanNext())
}

func TestRenderCallbackReceivesButtonState(t *testing.T) {
	var got []State[int]
	b := New([]int{1, 2, 3}, func(s State[int]) { got = append(got, s) })
	b.Next()
	b.Next()
	b.Next()
	b.Previous()

	require.Len(t, got, 3)
	assert.Equal(t, State[int]{Entry: 2, Position: 1, Len: 3, PrevEnabled: true, NextEnabled: true}, got[0])
	assert.Equal(t, State[int]{Entry: 3, Position: 2, Len: 3, PrevEnabled: true, NextEnabled: false}, got[1])
	assert.Equal(t, State[int]{Entry: 2, Position: 1, Len: 3, PrevEnabled: true, NextEnabled: true}, got[2])
}

func TestPositionStaysInBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, size := range []int{1, 8, 20, 26} {
		entries := make([]int, size)
		b := New(entries, nil)
		for i := 0; i < 500; i++ {
			if rnd.Intn(2) == 0 {
				b.Next()
			} else {
				b.Previous()
			}
			require.GreaterOrEqual(t, b.Position(), 0)
			require.LessOrEqual(t, b.Position(), size-1)
			require.Equal(t, b.Position() > 0, b.CanPrevious())
			require.Equal(t, b.Position() < size-1, b.CanNext())
		}
	}
}

func TestSingleEntryDisablesBothButtons(t *testing.T) {
	b := New([]string{"only"}, nil)
	assert.False(t, b.CanPrevious())
	assert.False(t, b.CanNext())
	assert.False(t, b.First())
	assert.False(t, b.Last())
}

func TestNewPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { New([]int{}, nil) })
}
