// Package history records launched entries in a SQLite database and serves
// them back as the "Recent" category.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Category is the sidebar name for recently launched entries.
const Category = "Recent"

const (
	fileName = "history.db"
	maxRows  = 500
)

const schema = `
CREATE TABLE IF NOT EXISTS launches (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    exec        TEXT NOT NULL,
    icon        TEXT NOT NULL DEFAULT '',
    comment     TEXT NOT NULL DEFAULT '',
    terminal    INTEGER NOT NULL DEFAULT 0,
    launched_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_launches_exec ON launches(exec);
`

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("history: store closed")

// Record is one launch.
type Record struct {
	ID         string
	Name       string
	Exec       string
	Icon       string
	Comment    string
	Terminal   bool
	LaunchedAt time.Time
}

// Entry converts the record back into a menu entry in the Recent category.
func (r Record) Entry() menu.Entry {
	return menu.Entry{
		Name:     r.Name,
		Exec:     r.Exec,
		Icon:     r.Icon,
		Comment:  r.Comment,
		Terminal: r.Terminal,
		Category: Category,
	}
}

// Store persists launch records.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// DefaultPath places the database next to the settings file.
func DefaultPath(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), fileName)
}

// Open opens (creating when needed) the database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db, path: path, now: time.Now}, nil
}

// Path reports the database file.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Record stores a launch of entry and trims the table to its newest rows.
func (s *Store) Record(entry menu.Entry) (Record, error) {
	if s == nil || s.db == nil {
		return Record{}, ErrClosed
	}
	rec := Record{
		ID:         uuid.NewString(),
		Name:       entry.Name,
		Exec:       entry.Exec,
		Icon:       entry.Icon,
		Comment:    entry.Comment,
		Terminal:   entry.Terminal,
		LaunchedAt: s.now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO launches (id, name, exec, icon, comment, terminal, launched_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Exec, rec.Icon, rec.Comment, boolInt(rec.Terminal), rec.LaunchedAt.UnixNano(),
	)
	if err != nil {
		err = fmt.Errorf("record launch: %w", err)
		events.History.Error(err)
		return Record{}, err
	}
	if _, err := s.db.Exec(
		`DELETE FROM launches WHERE rowid NOT IN (SELECT rowid FROM launches ORDER BY rowid DESC LIMIT ?)`,
		maxRows,
	); err != nil {
		events.History.Error(fmt.Errorf("trim history: %w", err))
	}
	events.History.Record(rec.ID, rec.Name)
	return rec, nil
}

// Recent returns up to limit records, newest first, one per command line.
func (s *Store) Recent(limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(`
SELECT id, name, exec, icon, comment, terminal, launched_at, MAX(rowid) AS seq
FROM launches
GROUP BY exec
ORDER BY seq DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec      Record
			terminal int
			nanos    int64
			seq      int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Exec, &rec.Icon, &rec.Comment, &terminal, &nanos, &seq); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rec.Terminal = terminal != 0
		rec.LaunchedAt = time.Unix(0, nanos).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Entries returns Recent(limit) as menu entries.
func (s *Store) Entries(limit int) ([]menu.Entry, error) {
	records, err := s.Recent(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]menu.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, rec.Entry())
	}
	return entries, nil
}

// Clear removes every record.
func (s *Store) Clear() error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	_, err := s.db.Exec(`DELETE FROM launches`)
	return err
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
