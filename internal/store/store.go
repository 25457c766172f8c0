// Package store handles SQLite persistence of quiz history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/kidtui/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for quiz sessions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quiz_sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			category TEXT NOT NULL,
			score INTEGER NOT NULL,
			questions INTEGER NOT NULL,
			timed_out INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quiz_answers (
			session_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			prompt TEXT NOT NULL,
			chosen TEXT NOT NULL,
			expected TEXT NOT NULL,
			correct INTEGER NOT NULL,
			PRIMARY KEY (session_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_sessions_ended_at ON quiz_sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_sessions_category ON quiz_sessions(category);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores a completed session and its answers.
func (s *Store) InsertResult(ctx context.Context, result model.QuizResult, answers []model.AnswerRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO quiz_sessions (started_at, ended_at, category, score, questions, timed_out, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.StartedAt.Format(time.RFC3339Nano),
		result.EndedAt.Format(time.RFC3339Nano),
		result.Category,
		result.Score,
		result.Questions,
		boolInt(result.TimedOut),
		result.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(answers) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO quiz_answers (session_id, position, prompt, chosen, expected, correct)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, a := range answers {
			if _, err = stmt.ExecContext(ctx, id, a.Position, a.Prompt, a.Chosen, a.Expected, boolInt(a.Correct)); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListResults returns stored sessions filtered by stats config, oldest first.
func (s *Store) ListResults(ctx context.Context, cfg model.StatsConfig) ([]model.ResultAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, cfg.Category)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, category, score, questions, timed_out, duration_ms
		FROM quiz_sessions
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.ResultAggregate
	for rows.Next() {
		var agg model.ResultAggregate
		var endedAt string
		var timedOut int
		if err := rows.Scan(&agg.SessionID, &endedAt, &agg.Category, &agg.Score, &agg.Questions, &timedOut, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		agg.TimedOut = timedOut != 0
		results = append(results, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListCategoryAggregates aggregates results per category across sessions.
func (s *Store) ListCategoryAggregates(ctx context.Context, sessionIDs []int64) ([]model.CategoryAggregate, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	placeholders, args := idArgs(sessionIDs)
	query := fmt.Sprintf(`SELECT category, COUNT(*) AS sessions, SUM(score) AS correct,
		SUM(questions) AS questions, SUM(timed_out) AS timed_out
		FROM quiz_sessions
		WHERE id IN (%s)
		GROUP BY category
		ORDER BY category`, placeholders)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.CategoryAggregate
	for rows.Next() {
		var agg model.CategoryAggregate
		if err := rows.Scan(&agg.Category, &agg.Sessions, &agg.Correct, &agg.Questions, &agg.TimedOut); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListQuestionAggregates aggregates answers per question across sessions.
func (s *Store) ListQuestionAggregates(ctx context.Context, sessionIDs []int64) ([]model.QuestionAggregate, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	placeholders, args := idArgs(sessionIDs)
	query := fmt.Sprintf(`SELECT qs.category, qa.prompt,
		SUM(qa.correct) AS correct, SUM(1 - qa.correct) AS wrong
		FROM quiz_answers qa
		JOIN quiz_sessions qs ON qs.id = qa.session_id
		WHERE qa.session_id IN (%s)
		GROUP BY qs.category, qa.prompt
		ORDER BY qs.category, qa.prompt`, placeholders)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.QuestionAggregate
	for rows.Next() {
		var agg model.QuestionAggregate
		if err := rows.Scan(&agg.Category, &agg.Prompt, &agg.Correct, &agg.Wrong); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func idArgs(ids []int64) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ","), args
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
