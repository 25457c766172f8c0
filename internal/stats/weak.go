package stats

import (
	"sort"

	"github.com/verte-zerg/kidtui/internal/model"
)

// CategoryAccuracy returns correct/questions for an aggregate, or 1 when no
// questions were answered.
func CategoryAccuracy(agg model.CategoryAggregate) float64 {
	if agg.Questions == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(agg.Questions)
}

// SortByAccuracy returns a copy of aggs ordered from weakest to strongest.
func SortByAccuracy(aggs []model.CategoryAggregate) []model.CategoryAggregate {
	out := make([]model.CategoryAggregate, len(aggs))
	copy(out, aggs)
	sort.Slice(out, func(i, j int) bool {
		ai := CategoryAccuracy(out[i])
		aj := CategoryAccuracy(out[j])
		if ai == aj {
			return out[i].Category < out[j].Category
		}
		return ai < aj
	})
	return out
}

// WeakestCategory returns the category with the lowest accuracy. ok is false
// when there is no history or every category is perfect.
func WeakestCategory(aggs []model.CategoryAggregate) (string, bool) {
	if len(aggs) == 0 {
		return "", false
	}
	weakest := SortByAccuracy(aggs)[0]
	if CategoryAccuracy(weakest) >= 1 {
		return "", false
	}
	return weakest.Category, true
}
