// Package content holds the static learning tables shared by the browsing
// modules and the quiz.
package content

import (
	"fmt"
	"strings"
)

// Category identifies a learning topic.
type Category string

const (
	Alphabet Category = "alphabet"
	Numbers  Category = "numbers"
	Colors   Category = "colors"
	Shapes   Category = "shapes"
)

// Categories lists the quiz categories in menu order.
var Categories = []Category{Alphabet, Numbers, Colors, Shapes}

// Title returns the display name of the category.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, c := range Categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// Letter pairs a letter with an example word.
type Letter struct {
	Char rune
	Word string
}

// Number pairs a value with its spelled-out word.
type Number struct {
	Value int
	Word  string
}

// Color describes one entry of the colors module.
type Color struct {
	Name    string
	Hex     string
	Example string
}

// Shape describes one entry of the shapes module. Index selects the drawing.
type Shape struct {
	Index       int
	Name        string
	Description string
}

// Provider supplies the content for every module.
type Provider interface {
	Letters() []Letter
	Numbers() []Number
	Colors() []Color
	Shapes() []Shape
	Questions(c Category) []Question
}

// Static is the built-in Provider. Letters can be overridden with custom
// example words.
type Static struct {
	words map[rune]string
}

// NewStatic returns the built-in content tables.
func NewStatic() *Static {
	return &Static{}
}

// WithWords returns a copy of s whose alphabet uses the given example words.
// Letters missing from words keep their built-in word.
func (s *Static) WithWords(words map[rune]string) *Static {
	out := &Static{words: make(map[rune]string, len(words))}
	for k, v := range words {
		out.words[k] = v
	}
	return out
}

// Letters returns 'A' through 'Z' with example words.
func (s *Static) Letters() []Letter {
	out := make([]Letter, 0, len(exampleWords))
	for ch := 'A'; ch <= 'Z'; ch++ {
		w, _ := ExampleWord(ch)
		if custom, ok := s.words[ch]; ok && custom != "" {
			w = custom
		}
		out = append(out, Letter{Char: ch, Word: w})
	}
	return out
}

// Numbers returns 1 through 20 with words.
func (s *Static) Numbers() []Number {
	out := make([]Number, len(numberWords))
	for i, w := range numberWords {
		out[i] = Number{Value: i + 1, Word: w}
	}
	return out
}

// Colors returns the colors table.
func (s *Static) Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// Shapes returns the shapes table in drawing-index order.
func (s *Static) Shapes() []Shape {
	out := make([]Shape, len(shapeNames))
	for i := range shapeNames {
		out[i] = Shape{Index: i, Name: shapeNames[i], Description: shapeDescriptions[i]}
	}
	return out
}

// Questions returns a fresh batch of questions for the category.
func (s *Static) Questions(c Category) []Question {
	bank := questionBanks[c]
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// ExampleWord returns the built-in example word for an upper-case letter.
func ExampleWord(ch rune) (string, bool) {
	if ch < 'A' || ch > 'Z' {
		return "", false
	}
	return exampleWords[ch-'A'], true
}

// NumberWord returns the word for n in [1, 20].
func NumberWord(n int) (string, bool) {
	if n < 1 || n > len(numberWords) {
		return "", false
	}
	return numberWords[n-1], true
}
