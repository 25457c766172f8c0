// Package generator randomizes quiz question order and option layout.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/kidtui/internal/content"
)

// Generator produces randomized question orderings.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// ShuffleQuestions returns the questions in random order without modifying
// the input.
func (g *Generator) ShuffleQuestions(questions []content.Question) []content.Question {
	out := make([]content.Question, len(questions))
	copy(out, questions)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleOptions returns the questions with each option list permuted. The
// correct answer text is preserved.
func (g *Generator) ShuffleOptions(questions []content.Question) []content.Question {
	out := make([]content.Question, len(questions))
	for i, q := range questions {
		out[i] = q.Permute(g.permutation())
	}
	return out
}

// Arrange shuffles both question order and options. It matches
// quiz.ArrangeFunc.
func (g *Generator) Arrange(questions []content.Question) []content.Question {
	return g.ShuffleOptions(g.ShuffleQuestions(questions))
}

func (g *Generator) permutation() [content.OptionCount]int {
	var perm [content.OptionCount]int
	for i, v := range g.rnd.Perm(content.OptionCount) {
		perm[i] = v
	}
	return perm
}
