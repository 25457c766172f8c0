package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/geometry"
)

func TestAlphabetViewFollowsBrowser(t *testing.T) {
	v := newAlphabetView(content.NewStatic(), defaultKeyMap())
	assert.Equal(t, "A", v.letter)
	assert.Equal(t, "Apple", v.word)
	assert.False(t, v.nav.prev)
	assert.True(t, v.nav.next)

	// Previous at the first entry is a no-op.
	assert.Nil(t, v.Update(keyMsg("left")))
	assert.Equal(t, "A", v.letter)

	v.Update(keyMsg("right"))
	assert.Equal(t, "B", v.letter)
	assert.True(t, v.nav.prev)

	v.Update(keyMsg("end"))
	assert.Equal(t, "Z", v.letter)
	assert.Equal(t, 25, v.nav.position)
	assert.False(t, v.nav.next)

	v.Update(keyMsg("right"))
	assert.Equal(t, "Z", v.letter)

	v.Update(keyMsg("home"))
	assert.Equal(t, "A", v.letter)
	assert.Contains(t, v.View(80, 24), "A is for Apple")
}

func TestAlphabetViewUsesCustomWords(t *testing.T) {
	p := content.NewStatic().WithWords(map[rune]string{'A': "Ant"})
	v := newAlphabetView(p, defaultKeyMap())
	assert.Equal(t, "Ant", v.word)
}

func TestBrowseHomeKey(t *testing.T) {
	v := newColorsView(content.NewStatic(), defaultKeyMap())
	cmd := v.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, homeMsg{}, cmd())
}

func TestNumbersViewDrawsOneDotPerValue(t *testing.T) {
	v := newNumbersView(content.NewStatic(), defaultKeyMap())
	for n := 1; n <= 20; n++ {
		assert.Equal(t, n, v.value)
		assert.Equal(t, n, v.count)
		assert.Positive(t, v.dots.Count())
		_, h := v.dots.PixelSize()
		assert.GreaterOrEqual(t, h, geometry.DotsHeight(n))
		v.Update(keyMsg("right"))
	}
	assert.Equal(t, 20, v.value)
	assert.False(t, v.nav.next)
}

func TestNumbersViewShowsWord(t *testing.T) {
	v := newNumbersView(content.NewStatic(), defaultKeyMap())
	v.Update(keyMsg("right"))
	v.Update(keyMsg("right"))
	assert.Equal(t, "Three", v.word)
	assert.Contains(t, v.View(80, 30), "Three")
}

func TestColorsViewShowsNameAndExample(t *testing.T) {
	colors := content.NewStatic().Colors()
	v := newColorsView(content.NewStatic(), defaultKeyMap())
	assert.Equal(t, colors[0], v.color)
	v.Update(keyMsg("l"))
	assert.Equal(t, colors[1], v.color)
	out := v.View(80, 30)
	assert.Contains(t, out, colors[1].Name)
	assert.Contains(t, out, colors[1].Example)
}

func TestShapesViewDrawsEveryShape(t *testing.T) {
	v := newShapesView(content.NewStatic(), defaultKeyMap())
	for i := 0; i < geometry.ShapeCount; i++ {
		assert.Equal(t, i, v.shape.Index)
		c := v.drawing(80, 30)
		assert.Positive(t, c.Count(), "shape %d", i)
		assert.Contains(t, v.View(80, 30), v.shape.Name)
		v.Update(keyMsg("right"))
	}
	assert.Equal(t, geometry.ShapeCount-1, v.shape.Index)
}

func TestShapesViewClampsDrawingSize(t *testing.T) {
	v := newShapesView(content.NewStatic(), defaultKeyMap())
	small := v.drawing(1, 1)
	assert.Equal(t, minShapeCols, small.Cols())
	assert.Equal(t, minShapeRows, small.Rows())
	large := v.drawing(500, 500)
	assert.Equal(t, maxShapeCols, large.Cols())
	assert.Equal(t, maxShapeRows, large.Rows())
	assert.Len(t, strings.Split(large.String(), "\n"), maxShapeRows)
}
