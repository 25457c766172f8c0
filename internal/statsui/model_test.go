package statsui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kidtui/internal/model"
	"github.com/verte-zerg/kidtui/internal/store"
)

func seedStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "kidtui.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	add := func(minute int, category string, score int, prompt string, correct bool) {
		start := base.Add(time.Duration(minute) * time.Minute)
		_, err := st.InsertResult(context.Background(), model.QuizResult{
			StartedAt:  start,
			EndedAt:    start.Add(15 * time.Second),
			Category:   category,
			Score:      score,
			Questions:  3,
			DurationMs: 15000,
		}, []model.AnswerRecord{{Prompt: prompt, Chosen: "x", Expected: "y", Correct: correct}})
		require.NoError(t, err)
	}
	add(0, "colors", 1, "What color is the sky?", false)
	add(1, "numbers", 3, "What comes after 5?", true)
	add(2, "colors", 2, "What color is the sky?", false)
	return st
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestOverviewShowsSummary(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "Quizzes")
	assert.Contains(t, out, "Accuracy |")
	assert.Contains(t, out, "Needs practice")
	assert.Contains(t, out, "window=5")
}

func TestTabsCycle(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(keyMsg("right"))
	assert.Equal(t, tabCategories, m.activeTab)
	out := m.View()
	assert.Contains(t, out, "colors")
	assert.Contains(t, out, "3/6")

	m.Update(keyMsg("right"))
	assert.Equal(t, tabQuestions, m.activeTab)
	assert.Contains(t, m.View(), "What color is the sky?")
	assert.NotContains(t, m.View(), "What comes after 5?")

	m.Update(keyMsg("right"))
	assert.Equal(t, tabOverview, m.activeTab)
	m.Update(keyMsg("left"))
	assert.Equal(t, tabQuestions, m.activeTab)
}

func TestWindowKeys(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{Window: 2})
	m.Update(keyMsg("="))
	assert.Equal(t, 3, m.cfg.Window)
	for i := 0; i < 5; i++ {
		m.Update(keyMsg("-"))
	}
	assert.Equal(t, 1, m.cfg.Window)
}

func TestFilterByCategory(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{})
	require.Len(t, m.report.Results, 3)

	m.Update(keyMsg("/"))
	require.True(t, m.filterMode)
	for _, r := range "Numbers" {
		m.Update(keyMsg(string(r)))
	}
	m.Update(keyMsg("enter"))
	assert.False(t, m.filterMode)
	assert.Equal(t, "numbers", m.cfg.Category)
	assert.Len(t, m.report.Results, 1)
}

func TestFilterRejectsBadInput(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{})
	m.Update(keyMsg("/"))
	for _, r := range "music" {
		m.Update(keyMsg(string(r)))
	}
	m.Update(keyMsg("enter"))
	assert.True(t, m.filterMode)
	assert.Contains(t, m.filterError, "unknown category")

	m.Update(keyMsg("esc"))
	assert.False(t, m.filterMode)
	assert.Empty(t, m.cfg.Category)
}

func TestFilterLastAndWindowValidation(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{})
	m.filterInputs[2].SetValue("-1")
	_, err := m.parseFilter()
	assert.Error(t, err)

	m.filterInputs[2].SetValue("2")
	m.filterInputs[3].SetValue("0")
	_, err = m.parseFilter()
	assert.Error(t, err)

	m.filterInputs[3].SetValue("4")
	m.filterInputs[1].SetValue("2026-05-01")
	cfg, err := m.parseFilter()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Last)
	assert.Equal(t, 4, cfg.Window)
	require.NotNil(t, cfg.Since)
}

func TestEmptyStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	m := NewModel(st, model.StatsConfig{})
	assert.Contains(t, m.View(), "No quizzes found.")
	m.Update(keyMsg("tab"))
	assert.Contains(t, m.View(), "No quizzes found.")
}

func TestQuit(t *testing.T) {
	m := NewModel(seedStore(t), model.StatsConfig{})
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
