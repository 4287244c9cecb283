// Package journal keeps a local SQLite log of finished analyses. Only a hash of
// the input is stored, never the text itself.
package journal

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
)

// Row is a single entry in the journal.
type Row struct {
	ID         int64  `json:"id"`
	Mode       string `json:"mode"`
	Catalog    string `json:"catalog"`
	Score      int    `json:"score"`
	Findings   int    `json:"findings"`
	RedFlags   int    `json:"red_flags"`
	Gaps       int    `json:"gaps"`
	InputHash  string `json:"input_hash"`
	InputChars int    `json:"input_chars"`
	Summary    string `json:"summary"`
	CreatedAt  string `json:"created_at"`
}

// ListInput filters List.
type ListInput struct {
	Mode  string
	Limit int
}

// ListResult is the output of List.
type ListResult struct {
	Rows  []Row `json:"rows"`
	Total int   `json:"total"`
}

// Default and maximum List page sizes.
const (
	DefaultLimit = 20
	MaxLimit     = 200
)

// ErrDisabled is returned by callers that hold no journal.
var ErrDisabled = errors.New("journal: disabled (set JOURNAL_PATH)")

// Journal is an open analysis log.
type Journal struct {
	db    *sql.DB
	path  string
	now   func() time.Time
	retry RetryConfig
}

// Open opens (or creates) the journal database at path.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, ErrDisabled
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("journal: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: init schema: %w", err)
	}
	return &Journal{db: db, path: path, now: time.Now, retry: DefaultRetryConfig}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		mode        TEXT NOT NULL,
		catalog     TEXT NOT NULL,
		score       INTEGER NOT NULL,
		findings    INTEGER NOT NULL,
		red_flags   INTEGER NOT NULL DEFAULT 0,
		gaps        INTEGER NOT NULL DEFAULT 0,
		input_hash  TEXT NOT NULL,
		input_chars INTEGER NOT NULL,
		summary     TEXT,
		created_at  TEXT NOT NULL
	)`)
	return err
}

// Path returns the database file.
func (j *Journal) Path() string { return j.path }

// Close closes the database.
func (j *Journal) Close() error { return j.db.Close() }

// HashInput returns the hex SHA-256 of the analysed texts, joined by a NUL byte.
func HashInput(texts ...string) string {
	h := sha256.New()
	for i, t := range texts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(t))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Record stores one result. texts are the inputs that produced it.
func (j *Journal) Record(ctx context.Context, res signals.AnalysisResult, texts ...string) (int64, error) {
	chars := 0
	for _, t := range texts {
		chars += utf8.RuneCountInString(t)
	}
	hash, created := HashInput(texts...), j.now().UTC().Format(time.RFC3339)
	r, err := retryBusy(ctx, j.retry, func() (sql.Result, error) {
		return j.db.ExecContext(ctx,
			`INSERT INTO analyses (mode, catalog, score, findings, red_flags, gaps, input_hash, input_chars, summary, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(res.Mode), string(res.Catalog), res.Score, res.FindingCount(),
			len(res.RedFlags), len(res.Gaps), hash, chars, res.Summary, created,
		)
	})
	if err != nil {
		return 0, fmt.Errorf("journal: insert: %w", err)
	}
	id, _ := r.LastInsertId()
	return id, nil
}

// List returns journal rows newest first, optionally filtered by mode.
func (j *Journal) List(ctx context.Context, input ListInput) (*ListResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	var (
		rows *sql.Rows
		err  error
	)
	const cols = `SELECT id, mode, catalog, score, findings, red_flags, gaps, input_hash, input_chars, summary, created_at FROM analyses`
	if input.Mode != "" {
		mode := signals.Mode(input.Mode)
		if mode != signals.ModeJobPosting && mode != signals.ModeSkillsGap {
			return nil, fmt.Errorf("journal: invalid mode %q (valid: %s, %s)", input.Mode, signals.ModeJobPosting, signals.ModeSkillsGap)
		}
		rows, err = j.db.QueryContext(ctx, cols+` WHERE mode = ? ORDER BY id DESC LIMIT ?`, input.Mode, limit)
	} else {
		rows, err = j.db.QueryContext(ctx, cols+` ORDER BY id DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("journal: query: %w", err)
	}
	defer rows.Close()

	out := &ListResult{Rows: []Row{}}
	for rows.Next() {
		var r Row
		var summary sql.NullString
		if err := rows.Scan(&r.ID, &r.Mode, &r.Catalog, &r.Score, &r.Findings, &r.RedFlags, &r.Gaps,
			&r.InputHash, &r.InputChars, &summary, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		r.Summary = summary.String
		out.Rows = append(out.Rows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: rows: %w", err)
	}
	out.Total = len(out.Rows)
	return out, nil
}
