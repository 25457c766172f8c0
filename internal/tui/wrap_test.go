package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, wrapText("hello world", 5))
	assert.Equal(t, []string{"a bc", "de"}, wrapText("a bc de", 4))
	assert.Equal(t, []string{"ab", "cdef"}, wrapText("ab cdef", 4))
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	assert.Equal(t, []string{"abc", "def", "gh"}, wrapText("abcdefgh", 3))
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, wrapText("one\ntwo", 10))
	assert.Equal(t, []string{"as is"}, wrapText("as is", 0))
}

func TestWrapTextCountsWideRunes(t *testing.T) {
	// Each emoji takes two columns.
	assert.Equal(t, []string{"🎉🎉", "🎉"}, wrapText("🎉🎉🎉", 4))
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 70, contentWidth(100))
	assert.Equal(t, 1, contentWidth(1))
	assert.Equal(t, 0, contentWidth(0))
}
