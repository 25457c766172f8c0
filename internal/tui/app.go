// Package tui provides the Bubble Tea learning interface: a home menu and one
// view per module.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/logging"
	"github.com/verte-zerg/kidtui/internal/model"
	"github.com/verte-zerg/kidtui/internal/quiz"
	"github.com/verte-zerg/kidtui/internal/stats"
	"github.com/verte-zerg/kidtui/internal/store"
)

// Module names accepted as a start module.
const (
	ModuleHome     = "home"
	ModuleAlphabet = "alphabet"
	ModuleNumbers  = "numbers"
	ModuleColors   = "colors"
	ModuleShapes   = "shapes"
	ModuleQuiz     = "quiz"
)

// Modules lists the home menu entries in order.
var Modules = []string{ModuleAlphabet, ModuleNumbers, ModuleColors, ModuleShapes, ModuleQuiz}

var moduleLabels = map[string]string{
	ModuleAlphabet: "Alphabet",
	ModuleNumbers:  "Numbers",
	ModuleColors:   "Colors",
	ModuleShapes:   "Shapes",
	ModuleQuiz:     "Quiz",
}

// suggestionWindow is how many recent sessions the home hint looks at.
const suggestionWindow = 10

// ValidModule reports whether name can be used as a start module.
func ValidModule(name string) bool {
	if name == ModuleHome {
		return true
	}
	_, ok := moduleLabels[name]
	return ok
}

// Options configure the shell.
type Options struct {
	Config   model.Config
	Provider content.Provider
	Engine   *quiz.Engine
	// Store records finished quizzes and feeds the home hint. Nil disables
	// history.
	Store  *store.Store
	Logger zerolog.Logger
}

// Model is the root Bubble Tea model. It owns the active module view and
// tears it down when switching back home.
type Model struct {
	cfg      model.Config
	provider content.Provider
	engine   *quiz.Engine
	store    *store.Store
	log      zerolog.Logger

	keys keyMap
	help help.Model

	width  int
	height int

	cursor     int
	active     view
	activeName string
	suggestion string
}

// NewModel constructs the shell, opening cfg.StartModule when set.
func NewModel(opts Options) *Model {
	engine := opts.Engine
	if engine == nil {
		engine = quiz.NewEngine(opts.Provider, quiz.Options{Duration: opts.Config.Duration})
	}
	m := &Model{
		cfg:      opts.Config,
		provider: opts.Provider,
		engine:   engine,
		store:    opts.Store,
		log:      logging.Component(opts.Logger, "tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.refreshSuggestion()
	if name := opts.Config.StartModule; name != "" && name != ModuleHome {
		m.open(name)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case homeMsg:
		m.closeActive()
		m.refreshSuggestion()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.closeActive()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.active == nil {
			return m, m.updateHome(msg)
		}
	}
	if m.active != nil {
		return m, m.active.Update(msg)
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	n := len(Modules)
	switch {
	case key.Matches(msg, m.keys.Up, m.keys.Prev):
		m.cursor = (m.cursor + n - 1) % n
	case key.Matches(msg, m.keys.Down, m.keys.Next):
		m.cursor = (m.cursor + 1) % n
	case key.Matches(msg, m.keys.Select):
		m.open(Modules[m.cursor])
	}
	return nil
}

// open builds a fresh view for the module, replacing the active one.
func (m *Model) open(name string) {
	m.closeActive()
	switch name {
	case ModuleAlphabet:
		m.active = newAlphabetView(m.provider, m.keys)
	case ModuleNumbers:
		m.active = newNumbersView(m.provider, m.keys)
	case ModuleColors:
		m.active = newColorsView(m.provider, m.keys)
	case ModuleShapes:
		m.active = newShapesView(m.provider, m.keys)
	case ModuleQuiz:
		var rec Recorder
		if m.store != nil && m.cfg.History {
			rec = m.store
		}
		qv := newQuizView(m.engine, m.cfg.FeedbackDelay, rec, logging.Component(m.log, "quiz"), m.keys)
		qv.onComplete = func(quiz.Session) { m.refreshSuggestion() }
		m.active = qv
	default:
		m.log.Warn().Str("module", name).Msg("unknown module")
		return
	}
	m.activeName = name
	for i, mod := range Modules {
		if mod == name {
			m.cursor = i
		}
	}
	m.log.Debug().Str("module", name).Msg("module opened")
}

func (m *Model) closeActive() {
	if m.active == nil {
		return
	}
	m.active.Close()
	m.active = nil
	m.activeName = ""
}

func (m *Model) refreshSuggestion() {
	m.suggestion = ""
	if m.store == nil {
		return
	}
	report, err := stats.BuildReport(context.Background(), m.store, model.StatsConfig{Window: suggestionWindow})
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load quiz history")
		return
	}
	weakest, ok := stats.WeakestCategory(report.CategoriesWindow)
	if !ok {
		return
	}
	if c, err := content.ParseCategory(weakest); err == nil {
		m.suggestion = c.Title()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	title := "Welcome to Kids Learning!"
	var body string
	if m.active == nil {
		body = m.viewHome()
	} else {
		title = m.active.Title()
		body = m.active.View(m.width, m.height)
	}
	header := titleStyle.Render(title)
	footer := m.help.View(m.keys)
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, "", body, "", footer}, "\n")
	}
	headerLine := lipgloss.Place(m.width, 2, lipgloss.Center, lipgloss.Top, header)
	footerLine := lipgloss.Place(m.width, lipgloss.Height(footer), lipgloss.Center, lipgloss.Bottom, footer)
	bodyHeight := m.height - lipgloss.Height(headerLine) - lipgloss.Height(footerLine)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return headerLine + "\n" + body + "\n" + footerLine
}

func (m *Model) viewHome() string {
	desc := "An educational platform for children to learn basic concepts interactively."
	rows := []string{paragraph(desc, contentWidth(m.width), mutedStyle), ""}
	for i, name := range Modules {
		rows = append(rows, button(moduleLabels[name], i == m.cursor, true))
	}
	if m.suggestion != "" {
		rows = append(rows, "", hintStyle.Render(fmt.Sprintf("Practice idea: try the %s quiz!", m.suggestion)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
