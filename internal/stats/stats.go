// Package stats contains quiz history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/kidtui/internal/model"
)

const sparkChars = " .:-=+*#%@"

// ResultMetrics computes accuracy (0-1) and average seconds per answered
// question for a session.
func ResultMetrics(score, questions int, durationMs int64) (accuracy, secsPerQuestion float64) {
	if questions <= 0 {
		return 0, 0
	}
	accuracy = float64(score) / float64(questions)
	if durationMs > 0 {
		secsPerQuestion = float64(durationMs) / 1000.0 / float64(questions)
	}
	return accuracy, secsPerQuestion
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline scaled to [lo, hi].
func Sparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	if math.Abs(hi-lo) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - lo) / (hi - lo)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Tail keeps at most the last n values.
func Tail(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// Summary holds totals across sessions.
type Summary struct {
	Sessions    int
	AvgAccuracy float64
	BestScore   int
	Perfect     int
	TimedOut    int
}

// Summarize computes totals for the given sessions.
func Summarize(results []model.ResultAggregate) Summary {
	var s Summary
	if len(results) == 0 {
		return s
	}
	var totalAcc float64
	for _, r := range results {
		acc, _ := ResultMetrics(r.Score, r.Questions, r.DurationMs)
		totalAcc += acc
		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		if r.Questions > 0 && r.Score == r.Questions {
			s.Perfect++
		}
		if r.TimedOut {
			s.TimedOut++
		}
	}
	s.Sessions = len(results)
	s.AvgAccuracy = totalAcc / float64(len(results))
	return s
}

// RenderSummary prints a summary block for sessions.
func RenderSummary(w io.Writer, results []model.ResultAggregate) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No quizzes found.")
		return err
	}
	s := Summarize(results)
	lines := []string{
		"Summary",
		fmt.Sprintf("Quizzes: %d", s.Sessions),
		fmt.Sprintf("Avg Accuracy: %.2f%%", s.AvgAccuracy*100),
		fmt.Sprintf("Best Score: %d", s.BestScore),
		fmt.Sprintf("Perfect: %d", s.Perfect),
		fmt.Sprintf("Timed Out: %d", s.TimedOut),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurve prints the moving-average accuracy as a sparkline no wider
// than width (0 means unlimited).
func RenderCurve(w io.Writer, results []model.ResultAggregate, window, width int) error {
	if len(results) == 0 {
		return nil
	}
	accs := make([]float64, len(results))
	for i, r := range results {
		acc, _ := ResultMetrics(r.Score, r.Questions, r.DurationMs)
		accs[i] = acc * 100
	}
	accs = MovingAverage(accs, window)
	const label = "Accuracy "
	if width > len(label)+2 {
		accs = Tail(accs, width-len(label)-2)
	}
	if _, err := fmt.Fprintf(w, "%s|%s|\n", label, Sparkline(accs, 0, 100)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Latest (window %d): %.1f%%\n\n", window, accs[len(accs)-1]); err != nil {
		return err
	}
	return nil
}

// RenderCategoryTable prints per-category aggregates.
func RenderCategoryTable(w io.Writer, aggs []model.CategoryAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No category stats found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Category"); err != nil {
		return err
	}
	headers := []string{"Category", "Quizzes", "Correct", "Accuracy", "Timed Out"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range SortByAccuracy(aggs) {
		rows = append(rows, []string{
			agg.Category,
			fmt.Sprintf("%d", agg.Sessions),
			fmt.Sprintf("%d/%d", agg.Correct, agg.Questions),
			fmt.Sprintf("%.2f%%", CategoryAccuracy(agg)*100),
			fmt.Sprintf("%d", agg.TimedOut),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints one line per session, newest last.
func RenderHistory(w io.Writer, results []model.ResultAggregate) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No quizzes found.")
		return err
	}
	headers := []string{"When", "Category", "Score", "Time", "Result"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		outcome := "finished"
		if r.TimedOut {
			outcome = "time up"
		}
		rows = append(rows, []string{
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Category,
			fmt.Sprintf("%d/%d", r.Score, r.Questions),
			fmt.Sprintf("%.0fs", float64(r.DurationMs)/1000),
			outcome,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{2: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
