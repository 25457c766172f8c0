// Package model defines shared data structures.
package model

import "time"

// Config defines app settings after merging flags and the config file.
type Config struct {
	StartModule   string
	WordsFile     string
	Duration      int
	FeedbackDelay time.Duration
	Shuffle       bool
	History       bool
}

// StatsConfig defines filters for quiz history output.
type StatsConfig struct {
	Category string
	Since    *time.Time
	Last     int
	Window   int
}

// QuizResult captures a completed quiz session.
type QuizResult struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Category   string
	Score      int
	Questions  int
	TimedOut   bool
	DurationMs int64
}

// AnswerRecord stores one answered question of a session.
type AnswerRecord struct {
	Position int
	Prompt   string
	Chosen   string
	Expected string
	Correct  bool
}

// ResultAggregate summarizes a stored session for reporting.
type ResultAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Category   string
	Score      int
	Questions  int
	TimedOut   bool
	DurationMs int64
}

// CategoryAggregate aggregates results per quiz category.
type CategoryAggregate struct {
	Category  string
	Sessions  int
	Correct   int
	Questions int
	TimedOut  int
}

// QuestionAggregate aggregates answers per question prompt.
type QuestionAggregate struct {
	Category string
	Prompt   string
	Correct  int
	Wrong    int
}
