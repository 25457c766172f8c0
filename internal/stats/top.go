package stats

import (
	"sort"

	"github.com/verte-zerg/kidtui/internal/model"
)

// MostMissed returns up to n questions with at least one wrong answer,
// ordered by wrong answers descending.
func MostMissed(aggs []model.QuestionAggregate, n int) []model.QuestionAggregate {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.QuestionAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Wrong > 0 {
			items = append(items, agg)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Wrong == items[j].Wrong {
			return items[i].Prompt < items[j].Prompt
		}
		return items[i].Wrong > items[j].Wrong
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
