package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kidtui/internal/model"
)

func TestMostMissed(t *testing.T) {
	aggs := []model.QuestionAggregate{
		{Prompt: "b", Wrong: 2},
		{Prompt: "a", Wrong: 2},
		{Prompt: "c", Wrong: 0, Correct: 5},
		{Prompt: "d", Wrong: 5},
	}
	got := MostMissed(aggs, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].Prompt)
	assert.Equal(t, "a", got[1].Prompt)

	assert.Len(t, MostMissed(aggs, 10), 3)
	assert.Nil(t, MostMissed(aggs, 0))
}

func TestWeakestCategory(t *testing.T) {
	_, ok := WeakestCategory(nil)
	assert.False(t, ok)

	aggs := []model.CategoryAggregate{
		{Category: "numbers", Correct: 5, Questions: 6},
		{Category: "colors", Correct: 1, Questions: 3},
		{Category: "shapes", Correct: 3, Questions: 3},
	}
	cat, ok := WeakestCategory(aggs)
	require.True(t, ok)
	assert.Equal(t, "colors", cat)

	_, ok = WeakestCategory([]model.CategoryAggregate{{Category: "shapes", Correct: 3, Questions: 3}})
	assert.False(t, ok)
}
