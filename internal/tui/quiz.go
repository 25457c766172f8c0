package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/model"
	"github.com/verte-zerg/kidtui/internal/quiz"
)

// Recorder persists finished quiz sessions.
type Recorder interface {
	InsertResult(ctx context.Context, result model.QuizResult, answers []model.AnswerRecord) (int64, error)
}

// tickMsg is the once-per-second countdown step for a session.
type tickMsg struct{ session int }

// advanceMsg fires after the feedback delay for question index of a session.
type advanceMsg struct {
	session int
	index   int
}

func tickCmd(session int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{session: session}
	})
}

func advanceCmd(delay time.Duration, session, index int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceMsg{session: session, index: index}
	})
}

type quizView struct {
	keys      keyMap
	engine    *quiz.Engine
	session   quiz.Session
	countdown quiz.Countdown
	delay     time.Duration
	recorder  Recorder
	log       zerolog.Logger
	bar       progress.Model
	cursor    int
	// onComplete is called after a finished session was handled.
	onComplete func(quiz.Session)
}

func newQuizView(engine *quiz.Engine, delay time.Duration, recorder Recorder, log zerolog.Logger, keys keyMap) *quizView {
	if delay <= 0 {
		delay = quiz.DefaultFeedbackDelay
	}
	return &quizView{
		keys:     keys,
		engine:   engine,
		delay:    delay,
		recorder: recorder,
		log:      log,
		bar:      progress.New(progress.WithSolidFill("#4682B4"), progress.WithoutPercentage()),
	}
}

func (v *quizView) Title() string { return "Quiz Time!" }

func (v *quizView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if !v.countdown.Accepts(msg.session) {
			return nil
		}
		return v.apply(quiz.Tick{SessionID: msg.session})
	case advanceMsg:
		return v.apply(quiz.Advance{SessionID: msg.session, Index: msg.index})
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Home) {
			v.Close()
			return goHome
		}
		switch v.session.Phase {
		case quiz.PhaseSelecting:
			return v.updateSelecting(msg)
		case quiz.PhaseActive:
			return v.updateActive(msg)
		case quiz.PhaseComplete:
			if key.Matches(msg, v.keys.Select) {
				return v.apply(quiz.Restart{})
			}
		}
	}
	return nil
}

func (v *quizView) updateSelecting(msg tea.KeyMsg) tea.Cmd {
	n := len(content.Categories)
	switch {
	case key.Matches(msg, v.keys.Up, v.keys.Prev):
		v.cursor = (v.cursor + n - 1) % n
	case key.Matches(msg, v.keys.Down, v.keys.Next):
		v.cursor = (v.cursor + 1) % n
	case key.Matches(msg, v.keys.Select):
		return v.apply(quiz.SelectCategory{Category: content.Categories[v.cursor]})
	default:
		if i, ok := v.keys.optionIndex(msg); ok && i < n {
			v.cursor = i
			return v.apply(quiz.SelectCategory{Category: content.Categories[i]})
		}
	}
	return nil
}

func (v *quizView) updateActive(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor = (v.cursor + content.OptionCount - 2) % content.OptionCount
	case key.Matches(msg, v.keys.Down):
		v.cursor = (v.cursor + 2) % content.OptionCount
	case key.Matches(msg, v.keys.Prev):
		v.cursor = (v.cursor + content.OptionCount - 1) % content.OptionCount
	case key.Matches(msg, v.keys.Next):
		v.cursor = (v.cursor + 1) % content.OptionCount
	case key.Matches(msg, v.keys.Select):
		return v.apply(quiz.SubmitAnswer{Option: v.cursor})
	default:
		if i, ok := v.keys.optionIndex(msg); ok {
			v.cursor = i
			return v.apply(quiz.SubmitAnswer{Option: i})
		}
	}
	return nil
}

// apply runs ev through the engine and performs the resulting effects.
func (v *quizView) apply(ev quiz.Event) tea.Cmd {
	prev := v.session
	next, eff := v.engine.Apply(v.session, ev)
	v.session = next

	var cmds []tea.Cmd
	if eff.Has(quiz.EffectStartCountdown) {
		v.countdown.Start(next.ID)
		v.log.Debug().Int("session", next.ID).Str("category", string(next.Category)).Msg("quiz started")
	}
	if eff.Has(quiz.EffectStopCountdown) {
		v.countdown.Stop()
	}
	if eff.Has(quiz.EffectScheduleTick) && v.countdown.Accepts(next.ID) {
		cmds = append(cmds, tickCmd(next.ID))
	}
	if eff.Has(quiz.EffectScheduleAdvance) {
		cmds = append(cmds, advanceCmd(v.delay, next.ID, next.Index))
	}
	if eff.Has(quiz.EffectCompleted) {
		v.record(next)
	}
	if next.Phase != prev.Phase && next.Phase != quiz.PhaseFeedback {
		v.cursor = 0
	}
	return tea.Batch(cmds...)
}

func (v *quizView) record(s quiz.Session) {
	v.log.Info().
		Int("session", s.ID).
		Str("category", string(s.Category)).
		Int("score", s.Score).
		Int("questions", s.Total()).
		Bool("timed_out", s.TimedOut).
		Msg("quiz complete")
	if v.recorder != nil {
		result, answers := resultFromSession(s)
		if _, err := v.recorder.InsertResult(context.Background(), result, answers); err != nil {
			v.log.Error().Err(err).Int("session", s.ID).Msg("failed to save quiz result")
		}
	}
	if v.onComplete != nil {
		v.onComplete(s)
	}
}

func resultFromSession(s quiz.Session) (model.QuizResult, []model.AnswerRecord) {
	result := model.QuizResult{
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
		Category:   string(s.Category),
		Score:      s.Score,
		Questions:  s.Total(),
		TimedOut:   s.TimedOut,
		DurationMs: s.EndedAt.Sub(s.StartedAt).Milliseconds(),
	}
	answers := make([]model.AnswerRecord, len(s.Answers))
	for i, a := range s.Answers {
		answers[i] = model.AnswerRecord{
			Position: i,
			Prompt:   a.Question.Prompt(),
			Chosen:   a.Question.Option(a.Chosen),
			Expected: a.Question.CorrectText(),
			Correct:  a.Correct,
		}
	}
	return result, answers
}

// Close abandons a running session and stops its countdown.
func (v *quizView) Close() {
	v.apply(quiz.Abandon{})
}

func (v *quizView) View(width, _ int) string {
	switch v.session.Phase {
	case quiz.PhaseSelecting:
		return v.viewSelecting()
	case quiz.PhaseComplete:
		return v.viewComplete()
	default:
		return v.viewQuestion(width)
	}
}

func (v *quizView) viewSelecting() string {
	rows := []string{titleStyle.Render("Choose Quiz Type"), ""}
	for i, c := range content.Categories {
		rows = append(rows, button(fmt.Sprintf("%d  %s Quiz", i+1, c.Title()), i == v.cursor, true))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (v *quizView) viewQuestion(width int) string {
	s := v.session
	q, ok := s.Current()
	if !ok {
		return ""
	}
	v.bar.Width = clamp(contentWidth(width), 10, 60)
	timer := textStyle.Render(fmt.Sprintf("Time: %ds", s.Remaining))
	bar := v.bar.ViewAs(float64(s.Remaining) / float64(v.engine.Duration()))
	status := mutedStyle.Render(fmt.Sprintf("Question %d of %d   Score: %d", s.Index+1, s.Total(), s.Score))
	prompt := paragraph(q.Prompt(), contentWidth(width), titleStyle)

	opts := q.Options()
	cells := make([]string, len(opts))
	for i, o := range opts {
		cells[i] = v.option(i, o)
	}
	grid := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, cells[0], " ", cells[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, cells[2], " ", cells[3]),
	)

	feedback := " "
	if s.Phase == quiz.PhaseFeedback {
		if s.Last.Correct {
			feedback = correctStyle.Render("Correct! 🎉")
		} else {
			feedback = incorrectStyle.Render("Try again! 💪")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, timer, bar, status, "", prompt, "", grid, "", feedback)
}

func (v *quizView) option(i int, text string) string {
	label := fmt.Sprintf("%d  %-12s", i+1, text)
	s := v.session
	if s.Phase == quiz.PhaseFeedback {
		switch {
		case i == s.Last.Question.Correct():
			return activeButtonStyle.BorderForeground(lipgloss.Color("#2E8B57")).Render(label)
		case i == s.Last.Chosen:
			return activeButtonStyle.BorderForeground(lipgloss.Color("#DC143C")).Render(label)
		default:
			return disabledButtonStyle.Render(label)
		}
	}
	return button(label, i == v.cursor, true)
}

func (v *quizView) viewComplete() string {
	s := v.session
	rows := []string{
		titleStyle.Render("Quiz Complete!"),
		"",
		textStyle.Render(fmt.Sprintf("Your score: %d out of %d", s.Score, s.Total())),
	}
	if s.TimedOut {
		rows = append(rows, mutedStyle.Render("Time's up!"))
	}
	rows = append(rows, "", button("Try Another Quiz", true, true))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
