package history

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Entry is one answered question in the audit trail.
type Entry struct {
	RequestID string    `json:"request_id"`
	Question  string    `json:"question"`
	Category  string    `json:"category"`
	Query     string    `json:"query"`
	Success   bool      `json:"success"`
	Answer    string    `json:"answer"`
	LatencyMS int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder persists answered questions to Postgres. It is optional
// infrastructure: the engine works without it, and a nil *Recorder is
// safe to call.
type Recorder struct {
	pool *pgxpool.Pool
}

// NewRecorder migrates the schema and opens a connection pool.
func NewRecorder(ctx context.Context, databaseURL string) (*Recorder, error) {
	if err := runMigrations(databaseURL); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Recorder{pool: pool}, nil
}

func runMigrations(databaseURL string) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Record appends one entry. Failures are logged, not returned: losing
// an audit row must never fail the question it belongs to.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if r == nil {
		return
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO question_log (request_id, question, category, query, success, answer, latency_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.RequestID, e.Question, e.Category, e.Query, e.Success, e.Answer, e.LatencyMS,
	)
	if err != nil {
		logger.Error("Failed to record question history", "err", err)
	}
}

// Recent returns the newest entries, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if r == nil {
		return []Entry{}, nil
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx,
		`SELECT request_id, question, category, query, success, answer, latency_ms, created_at
		 FROM question_log
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RequestID, &e.Question, &e.Category, &e.Query,
			&e.Success, &e.Answer, &e.LatencyMS, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the connection pool.
func (r *Recorder) Close() {
	if r != nil {
		r.pool.Close()
	}
}
