// Package quiz implements the timed multiple-choice quiz as a pure state
// machine. The host feeds events to Engine.Apply and acts on the returned
// effects: arming the countdown, scheduling ticks and the post-answer
// advance, persisting the finished session.
package quiz

import (
	"fmt"
	"time"

	"github.com/verte-zerg/kidtui/internal/content"
)

// Defaults for a session.
const (
	DefaultDuration      = 30
	DefaultFeedbackDelay = time.Second
)

// Phase is the state of a session.
type Phase int

const (
	PhaseSelecting Phase = iota
	PhaseActive
	PhaseFeedback
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseActive:
		return "active"
	case PhaseFeedback:
		return "feedback"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Answer records the option picked for one question.
type Answer struct {
	Question content.Question
	Chosen   int
	Correct  bool
}

// Session is one run of the quiz. The zero value is the category selection
// screen.
type Session struct {
	ID        int
	Category  content.Category
	Questions []content.Question
	Index     int
	Score     int
	Remaining int
	Phase     Phase
	// Last is the answer shown during PhaseFeedback.
	Last      Answer
	Answers   []Answer
	TimedOut  bool
	StartedAt time.Time
	EndedAt   time.Time
}

// Total returns the number of questions in the session.
func (s Session) Total() int { return len(s.Questions) }

// Current returns the question being asked, if any.
func (s Session) Current() (content.Question, bool) {
	if s.Phase != PhaseActive && s.Phase != PhaseFeedback {
		return content.Question{}, false
	}
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return content.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Running reports whether the session is between selection and completion.
func (s Session) Running() bool {
	return s.Phase == PhaseActive || s.Phase == PhaseFeedback
}

// Event is an input to Engine.Apply.
type Event interface {
	event()
}

// SelectCategory starts a session for the category.
type SelectCategory struct{ Category content.Category }

// SubmitAnswer picks an option for the current question.
type SubmitAnswer struct{ Option int }

// Tick is the once-per-second countdown step for a session.
type Tick struct{ SessionID int }

// Advance is the deferred move past the answered question Index.
type Advance struct {
	SessionID int
	Index     int
}

// Restart returns from the final score to category selection.
type Restart struct{}

// Abandon leaves a session before it completes.
type Abandon struct{}

func (SelectCategory) event() {}
func (SubmitAnswer) event()   {}
func (Tick) event()           {}
func (Advance) event()        {}
func (Restart) event()        {}
func (Abandon) event()        {}

// Effect is a set of actions the host must perform after a transition.
type Effect uint8

const (
	// EffectStartCountdown arms the countdown for the new session.
	EffectStartCountdown Effect = 1 << iota
	// EffectScheduleTick requests the next Tick in one second.
	EffectScheduleTick
	// EffectScheduleAdvance requests an Advance after the feedback delay.
	EffectScheduleAdvance
	// EffectStopCountdown disarms the countdown.
	EffectStopCountdown
	// EffectCompleted marks the session as finished and ready to record.
	EffectCompleted
)

// Has reports whether e includes f.
func (e Effect) Has(f Effect) bool { return e&f != 0 }

// ArrangeFunc may reorder questions or options when a session starts.
type ArrangeFunc func([]content.Question) []content.Question

// Options configure an Engine.
type Options struct {
	// Duration is the countdown length in seconds.
	Duration int
	Arrange  ArrangeFunc
	Now      func() time.Time
}

// Engine applies events to sessions.
type Engine struct {
	provider content.Provider
	opts     Options
	lastID   int
}

// NewEngine returns an engine drawing questions from p.
func NewEngine(p content.Provider, opts Options) *Engine {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{provider: p, opts: opts}
}

// Duration returns the countdown length in seconds.
func (e *Engine) Duration() int { return e.opts.Duration }

// Apply returns the session after ev along with the effects to perform.
// Events that do not apply to the current phase or target another session
// leave s unchanged.
func (e *Engine) Apply(s Session, ev Event) (Session, Effect) {
	switch ev := ev.(type) {
	case SelectCategory:
		if s.Phase != PhaseSelecting {
			return s, 0
		}
		return e.start(ev.Category)
	case SubmitAnswer:
		if s.Phase != PhaseActive {
			return s, 0
		}
		return submit(s, ev.Option)
	case Tick:
		if ev.SessionID != s.ID || !s.Running() {
			return s, 0
		}
		s.Remaining--
		if s.Remaining <= 0 {
			s.Remaining = 0
			s.TimedOut = true
			return e.complete(s)
		}
		return s, EffectScheduleTick
	case Advance:
		if ev.SessionID != s.ID || s.Phase != PhaseFeedback || ev.Index != s.Index {
			return s, 0
		}
		s.Index++
		s.Last = Answer{}
		if s.Index >= len(s.Questions) {
			return e.complete(s)
		}
		s.Phase = PhaseActive
		return s, 0
	case Restart:
		if s.Phase != PhaseComplete {
			return s, 0
		}
		return Session{}, 0
	case Abandon:
		if s.Running() {
			return Session{}, EffectStopCountdown
		}
		return Session{}, 0
	default:
		return s, 0
	}
}

func (e *Engine) start(c content.Category) (Session, Effect) {
	questions := e.provider.Questions(c)
	if e.opts.Arrange != nil {
		questions = e.opts.Arrange(questions)
	}
	if len(questions) == 0 {
		return Session{}, 0
	}
	e.lastID++
	s := Session{
		ID:        e.lastID,
		Category:  c,
		Questions: questions,
		Remaining: e.opts.Duration,
		Phase:     PhaseActive,
		StartedAt: e.opts.Now(),
	}
	return s, EffectStartCountdown | EffectScheduleTick
}

func submit(s Session, option int) (Session, Effect) {
	q := s.Questions[s.Index]
	if option < 0 || option >= content.OptionCount {
		panic(fmt.Sprintf("quiz: option %d out of range", option))
	}
	a := Answer{Question: q, Chosen: option, Correct: q.IsCorrect(option)}
	if a.Correct {
		s.Score++
	}
	answers := make([]Answer, len(s.Answers), len(s.Answers)+1)
	copy(answers, s.Answers)
	s.Answers = append(answers, a)
	s.Last = a
	s.Phase = PhaseFeedback
	return s, EffectScheduleAdvance
}

func (e *Engine) complete(s Session) (Session, Effect) {
	s.Phase = PhaseComplete
	s.Last = Answer{}
	s.EndedAt = e.opts.Now()
	return s, EffectStopCountdown | EffectCompleted
}
