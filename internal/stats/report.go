// Package stats contains quiz history calculations and reporting.
package stats

import (
	"context"

	"github.com/verte-zerg/kidtui/internal/model"
	"github.com/verte-zerg/kidtui/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Results          []model.ResultAggregate
	WindowSessionIDs []int64
	CategoriesAll    []model.CategoryAggregate
	CategoriesWindow []model.CategoryAggregate
	Questions        []model.QuestionAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	results, err := st.ListResults(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(results) > cfg.Last {
		results = results[len(results)-cfg.Last:]
	}

	allIDs := sessionIDs(results)
	windowIDs := lastSessionIDs(results, cfg.Window)
	categoriesAll, err := st.ListCategoryAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	categoriesWindow, err := st.ListCategoryAggregates(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}
	questions, err := st.ListQuestionAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Results:          results,
		WindowSessionIDs: windowIDs,
		CategoriesAll:    categoriesAll,
		CategoriesWindow: categoriesWindow,
		Questions:        questions,
	}, nil
}

func sessionIDs(results []model.ResultAggregate) []int64 {
	ids := make([]int64, len(results))
	for i, r := range results {
		ids[i] = r.SessionID
	}
	return ids
}

func lastSessionIDs(results []model.ResultAggregate, window int) []int64 {
	if window <= 0 || len(results) <= window {
		return sessionIDs(results)
	}
	return sessionIDs(results[len(results)-window:])
}
