package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed Recorder with query access for stats.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite journal at path, applies pragmas, and migrates
// the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user append workloads.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		module_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		correct INTEGER NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS quiz_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		module_id TEXT NOT NULL,
		score_percent INTEGER NOT NULL,
		correct INTEGER NOT NULL,
		total INTEGER NOT NULL,
		at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL UNIQUE,
		started_at DATETIME NOT NULL,
		duration_minutes REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_answer_module ON answer_events(module_id);
	CREATE INDEX IF NOT EXISTS idx_quiz_module ON quiz_events(module_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// AppendAnswer records a graded question.
func (s *Store) AppendAnswer(ctx context.Context, ev AnswerEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answer_events (session_id, module_id, kind, correct, detail, at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.ModuleID, ev.Kind, boolToInt(ev.Correct), ev.Detail, ev.At.UTC())
	return err
}

// AppendQuiz records a completed quiz attempt.
func (s *Store) AppendQuiz(ctx context.Context, ev QuizEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_events (session_id, module_id, score_percent, correct, total, at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.ModuleID, ev.ScorePercent, ev.Correct, ev.Total, ev.At.UTC())
	return err
}

// AppendSession records a finished session.
func (s *Store) AppendSession(ctx context.Context, ev SessionEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_events (session_id, started_at, duration_minutes)
		 VALUES (?, ?, ?)`,
		ev.SessionID, ev.StartedAt.UTC(), ev.DurationMinutes)
	return err
}

// ModuleAccuracy is per-module answer accuracy derived from the journal.
type ModuleAccuracy struct {
	ModuleID string
	Answered int
	Correct  int
}

// Accuracy returns the fraction correct, zero when nothing was answered.
func (a ModuleAccuracy) Accuracy() float64 {
	if a.Answered == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Answered)
}

// ModuleAccuracies aggregates answer events by module.
func (s *Store) ModuleAccuracies(ctx context.Context) ([]ModuleAccuracy, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT module_id, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM answer_events GROUP BY module_id ORDER BY module_id`)
	if err != nil {
		return nil, fmt.Errorf("query accuracies: %w", err)
	}
	defer rows.Close()

	var out []ModuleAccuracy
	for rows.Next() {
		var a ModuleAccuracy
		if err := rows.Scan(&a.ModuleID, &a.Answered, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan accuracy: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SessionSummary is one journaled session for stats display.
type SessionSummary struct {
	StartedAt       time.Time
	DurationMinutes float64
}

// RecentSessions returns the most recent n sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, n int) ([]SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT started_at, duration_minutes FROM session_events
		 ORDER BY started_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var ss SessionSummary
		if err := rows.Scan(&ss.StartedAt, &ss.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, ss)
	}
	return out, rows.Err()
}

// Totals reports overall journal counts.
type Totals struct {
	Answers  int
	Quizzes  int
	Sessions int
}

// CountTotals returns overall event counts.
func (s *Store) CountTotals(ctx context.Context) (Totals, error) {
	var t Totals
	row := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM answer_events),
			(SELECT COUNT(*) FROM quiz_events),
			(SELECT COUNT(*) FROM session_events)`)
	if err := row.Scan(&t.Answers, &t.Quizzes, &t.Sessions); err != nil {
		return Totals{}, fmt.Errorf("scan totals: %w", err)
	}
	return t, nil
}

// DefaultPath resolves the journal file path next to the progress file:
// 1. NORLEARN_JOURNAL environment variable
// 2. $XDG_DATA_HOME/norlearn/journal.db
// 3. ~/.local/share/norlearn/journal.db
func DefaultPath() (string, error) {
	if p := os.Getenv("NORLEARN_JOURNAL"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "norlearn", "journal.db"), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
