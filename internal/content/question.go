package content

import "fmt"

// OptionCount is the number of answer options per question.
const OptionCount = 4

// Question is an immutable multiple-choice question.
type Question struct {
	prompt  string
	options [OptionCount]string
	correct int
}

// NewQuestion builds a question. It panics when correct is out of range,
// since question tables are fixed at compile time.
func NewQuestion(prompt string, options [OptionCount]string, correct int) Question {
	if correct < 0 || correct >= OptionCount {
		panic(fmt.Sprintf("content: correct option %d out of range", correct))
	}
	return Question{prompt: prompt, options: options, correct: correct}
}

// Prompt returns the question text.
func (q Question) Prompt() string { return q.prompt }

// Options returns a copy of the answer options.
func (q Question) Options() [OptionCount]string { return q.options }

// Option returns the text of option i.
func (q Question) Option(i int) string { return q.options[i] }

// Correct returns the index of the correct option.
func (q Question) Correct() int { return q.correct }

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string { return q.options[q.correct] }

// IsCorrect reports whether option i is the right answer.
func (q Question) IsCorrect(i int) bool { return i == q.correct }

// Permute returns a copy of q with options reordered so that new option i
// is old option perm[i]. The correct index follows its option.
func (q Question) Permute(perm [OptionCount]int) Question {
	var out Question
	out.prompt = q.prompt
	for i, from := range perm {
		out.options[i] = q.options[from]
		if from == q.correct {
			out.correct = i
		}
	}
	return out
}
