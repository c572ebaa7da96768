package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get lookups when no row matches.
var ErrNotFound = errors.New("not found")

// Store owns the SQLite connection and hands out repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Open connects to the SQLite database at dsn, applies the connection
// pragmas and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, drv: drv, seq: seq}, nil
}

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

// withPragmas appends the connection pragmas to dsn in the form the
// modernc driver understands.
func withPragmas(dsn string) string {
	var b strings.Builder
	b.WriteString(dsn)
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, p := range pragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// EventRepo returns the LLM event repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// AssessmentRepo returns the interview result repository.
func (s *Store) AssessmentRepo() AssessmentRepo {
	return &assessmentRepo{db: s.db}
}

// QuizRepo returns the question set and quiz result repository.
func (s *Store) QuizRepo() QuizRepo {
	return &quizRepo{db: s.db}
}

// AchievementRepo returns the achievement ledger repository.
func (s *Store) AchievementRepo() AchievementRepo {
	return &achievementRepo{db: s.db}
}

// DefaultDBPath resolves the database file path in priority order:
// 1. STUDYGENIE_DB environment variable
// 2. $XDG_DATA_HOME/studygenie/studygenie.db
// 3. ~/.local/share/studygenie/studygenie.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STUDYGENIE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "studygenie", "studygenie.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

var builder = entsql.Dialect(dialect.SQLite)

// execBuilt runs an insert, update or delete produced by the ent SQL
// builder.
func execBuilt(ctx context.Context, db *sql.DB, q interface{ Query() (string, []any) }) (sql.Result, error) {
	query, args := q.Query()
	return db.ExecContext(ctx, query, args...)
}

// queryBuilt runs a select produced by the ent SQL builder.
func queryBuilt(ctx context.Context, db *sql.DB, sel *entsql.Selector) (*sql.Rows, error) {
	query, args := sel.Query()
	return db.QueryContext(ctx, query, args...)
}

// applyOpts narrows a selector ordered by col according to opts.
func applyOpts(sel *entsql.Selector, col string, opts QueryOpts) *entsql.Selector {
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(col, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(col, opts.To.UTC()))
	}
	sel.OrderBy(entsql.Desc(col))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}
