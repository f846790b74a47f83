// Package database is the storage layer. A single Database type serves every
// entity over database/sql, backed by SQLite (mattn/go-sqlite3) or PostgreSQL
// (pgx stdlib) depending on the connection URL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/akyairhashvil/momentum/internal/contract"
)

const defaultDBTimeout = 5 * time.Second

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Database wraps the connection pool together with its dialect.
type Database struct {
	DB      *sql.DB
	dialect dialect
	dsn     string
	timeout time.Duration
	now     func() time.Time
}

// Option customizes Open.
type Option func(*Database)

// WithTimeout bounds every storage call.
func WithTimeout(d time.Duration) Option {
	return func(db *Database) {
		if d > 0 {
			db.timeout = d
		}
	}
}

// WithClock replaces time.Now for timestamps written by the storage layer.
func WithClock(now func() time.Time) Option {
	return func(db *Database) {
		if now != nil {
			db.now = now
		}
	}
}

// Open connects to rawURL, verifies the connection and creates the schema.
//
// Accepted forms: postgres://..., postgresql://..., sqlite://path, sqlite:path,
// or a bare file path (SQLite).
func Open(ctx context.Context, rawURL string, opts ...Option) (*Database, error) {
	driver, dsn, dia, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}
	d := &Database{dialect: dia, dsn: dsn, timeout: defaultDBTimeout, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dia, err)
	}
	if dia == dialectSQLite {
		// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	}
	d.DB = conn

	if err := d.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", dia, err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

func parseURL(rawURL string) (driver, dsn string, dia dialect, err error) {
	rawURL = strings.TrimSpace(rawURL)
	switch {
	case rawURL == "":
		return "", "", 0, fmt.Errorf("database url is empty")
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return "pgx", rawURL, dialectPostgres, nil
	}

	path := strings.TrimPrefix(strings.TrimPrefix(rawURL, "sqlite://"), "sqlite:")
	path = strings.TrimPrefix(path, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "", "", 0, fmt.Errorf("sqlite url %q has no path", rawURL)
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", "", 0, fmt.Errorf("create database dir: %w", err)
		}
	}
	return "sqlite3", "file:" + path + "?_foreign_keys=on&_busy_timeout=5000", dialectSQLite, nil
}

// Close releases the pool.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Ping checks connectivity under the storage timeout.
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.DB.PingContext(ctx)
}

// Dialect names the backend in use.
func (d *Database) Dialect() string { return d.dialect.String() }

func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d.timeout)
}

func (d *Database) timestamp() time.Time {
	return contract.Normalize(d.now())
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (d *Database) rebind(query string) string {
	if d.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (d *Database) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return d.DB.ExecContext(ctx, d.rebind(query), args...)
}

func (d *Database) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, d.rebind(query), args...)
}

func (d *Database) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.DB.QueryRowContext(ctx, d.rebind(query), args...)
}

// Migrate creates any missing tables and indexes. Safe to run repeatedly.
func (d *Database) Migrate(ctx context.Context) error {
	return d.migrate(ctx)
}

func (d *Database) migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for _, stmt := range schema(d.dialect) {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w: %s", err, firstLine(stmt))
		}
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func schema(dia dialect) []string {
	pk, ts := "INTEGER PRIMARY KEY AUTOINCREMENT", "TIMESTAMP"
	if dia == dialectPostgres {
		pk, ts = "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY", "TIMESTAMPTZ"
	}
	r := strings.NewReplacer("{pk}", pk, "{ts}", ts)
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			first_name TEXT,
			last_name TEXT,
			password_hash TEXT NOT NULL,
			created_at {ts} NOT NULL,
			updated_at {ts} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token_hash TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at {ts} NOT NULL,
			created_at {ts} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sprints (
			id {pk},
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			start_date {ts} NOT NULL,
			end_date {ts} NOT NULL,
			status TEXT NOT NULL DEFAULT 'active'
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id {pk},
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			sprint_id BIGINT REFERENCES sprints(id) ON DELETE SET NULL,
			title TEXT NOT NULL,
			description TEXT,
			type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'not_started',
			progress INTEGER NOT NULL DEFAULT 0,
			date {ts},
			created_at {ts} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id {pk},
			goal_id BIGINT REFERENCES goals(id),
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'todo',
			progress INTEGER NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium',
			due_date {ts},
			created_at {ts} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS retrospectives (
			id {pk},
			sprint_id BIGINT REFERENCES sprints(id) ON DELETE SET NULL,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			summary TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at {ts} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS conversations (
			id {pk},
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			created_at {ts} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id {pk},
			conversation_id BIGINT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at {ts} NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sprints_user ON sprints(user_id, start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_sprint ON goals(sprint_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id)`,
		`CREATE INDEX IF NOT EXISTS idx_retros_user ON retrospectives(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, id)`,
	}
	for i, s := range stmts {
		stmts[i] = r.Replace(s)
	}
	return stmts
}
