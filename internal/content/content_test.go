package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLettersCoverAlphabet(t *testing.T) {
	letters := NewStatic().Letters()
	require.Len(t, letters, 26)
	for i, l := range letters {
		assert.Equal(t, rune('A'+i), l.Char)
		assert.NotEmpty(t, l.Word, "letter %c", l.Char)
	}
	assert.Equal(t, "Apple", letters[0].Word)
	assert.Equal(t, "Zebra", letters[25].Word)
}

func TestWithWordsOverridesOnlyGivenLetters(t *testing.T) {
	base := NewStatic()
	custom := base.WithWords(map[rune]string{'B': "Banana"})

	letters := custom.Letters()
	assert.Equal(t, "Apple", letters[0].Word)
	assert.Equal(t, "Banana", letters[1].Word)
	assert.Equal(t, "Ball", base.Letters()[1].Word)
}

func TestExampleWordBacksLetters(t *testing.T) {
	custom := NewStatic().WithWords(map[rune]string{'C': "Cow"}).Letters()
	for _, l := range custom {
		want, ok := ExampleWord(l.Char)
		require.True(t, ok)
		if l.Char == 'C' {
			want = "Cow"
		}
		assert.Equal(t, want, l.Word, "letter %c", l.Char)
	}

	_, ok := ExampleWord('a')
	assert.False(t, ok)
	_, ok = ExampleWord('[')
	assert.False(t, ok)
}

func TestNumbersTable(t *testing.T) {
	numbers := NewStatic().Numbers()
	require.Len(t, numbers, 20)
	assert.Equal(t, Number{Value: 1, Word: "One"}, numbers[0])
	assert.Equal(t, Number{Value: 20, Word: "Twenty"}, numbers[19])

	word, ok := NumberWord(7)
	assert.True(t, ok)
	assert.Equal(t, "Seven", word)
	_, ok = NumberWord(21)
	assert.False(t, ok)
}

func TestShapesTable(t *testing.T) {
	shapes := NewStatic().Shapes()
	require.Len(t, shapes, 8)
	for i, s := range shapes {
		assert.Equal(t, i, s.Index)
		assert.NotEmpty(t, s.Description)
	}
	assert.Equal(t, "Star", shapes[5].Name)
	assert.Equal(t, "Diamond", shapes[7].Name)
}

func TestColorsHaveHexValues(t *testing.T) {
	for _, c := range NewStatic().Colors() {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Hex, c.Name)
	}
}

func TestQuestionsPerCategory(t *testing.T) {
	p := NewStatic()
	for _, c := range Categories {
		qs := p.Questions(c)
		require.Len(t, qs, 3, string(c))
		for _, q := range qs {
			assert.NotEmpty(t, q.Prompt())
			for _, opt := range q.Options() {
				assert.NotEmpty(t, opt)
			}
		}
	}

	numbers := p.Questions(Numbers)
	assert.Equal(t, "What comes after 5?", numbers[0].Prompt())
	assert.Equal(t, 1, numbers[0].Correct())
	assert.Equal(t, "6", numbers[0].CorrectText())
}

func TestQuestionsReturnsFreshBatch(t *testing.T) {
	p := NewStatic()
	first := p.Questions(Colors)
	first[0] = NewQuestion("changed", [4]string{"a", "b", "c", "d"}, 0)
	assert.Equal(t, "What color is the sky?", p.Questions(Colors)[0].Prompt())
}

func TestQuestionPermuteKeepsAnswer(t *testing.T) {
	q := NewQuestion("What is two plus two?", [4]string{"2", "3", "4", "5"}, 2)
	p := q.Permute([4]int{3, 2, 1, 0})
	assert.Equal(t, [4]string{"5", "4", "3", "2"}, p.Options())
	assert.Equal(t, 1, p.Correct())
	assert.Equal(t, "4", p.CorrectText())
	assert.Equal(t, 2, q.Correct())
}

func TestNewQuestionPanicsOnBadIndex(t *testing.T) {
	assert.Panics(t, func() {
		NewQuestion("bad", [4]string{"a", "b", "c", "d"}, 4)
	})
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Numbers ")
	require.NoError(t, err)
	assert.Equal(t, Numbers, c)
	assert.Equal(t, "Numbers", c.Title())

	_, err = ParseCategory("planets")
	assert.Error(t, err)
}
