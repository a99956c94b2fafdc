// Package analytics records privacy-conscious page statistics in sqlite.
//
// Raw IP addresses are never stored; visitors are identified by a salted,
// truncated SHA-256 of their address.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Event kinds recorded besides page views.
const (
	EventReveal   = "reveal"
	EventSkillTab = "skill_tab"
)

// Visitor is one recorded page view.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PathCount is a page and how often it was viewed.
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	Reveals          int64            `json:"reveals"`
	SkillTabs        map[string]int64 `json:"skill_tabs"`
	TopPaths         []PathCount      `json:"top_paths"`
	RecentVisitors   []Visitor        `json:"recent_visitors"`
}

// Store is the analytics database.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors(ts);
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	detail TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS events_kind ON events(kind);
`

// Option configures a Store.
type Option func(*Store)

// WithSalt fixes the IP hashing salt. Without it a random salt is generated,
// so hashes are only stable for the life of the process.
func WithSalt(salt string) Option {
	return func(s *Store) { s.salt = salt }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path. ":memory:" works.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}
	// sqlite allows one writer; a single connection also keeps :memory: alive
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create analytics tables: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.salt == "" {
		s.salt, err = randomHex(32)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP hashes an address with the store's salt.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// RecordEvent stores an interaction such as a reveal.
func (s *Store) RecordEvent(ctx context.Context, kind, detail string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (kind, detail, ts) VALUES (?, ?, ?)`,
		kind, detail, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record %s event: %w", kind, err)
	}
	return nil
}

// Stats summarizes the recorded data.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{SkillTabs: map[string]int64{}}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{midnight.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}},
		{&stats.Reveals, `SELECT COUNT(*) FROM events WHERE kind = ?`, []any{EventReveal}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to load stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT detail, COUNT(*) FROM events WHERE kind = ? GROUP BY detail`, EventSkillTab)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill tab stats: %w", err)
	}
	for rows.Next() {
		var tab string
		var n int64
		if err := rows.Scan(&tab, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan skill tab stats: %w", err)
		}
		stats.SkillTabs[tab] = n
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read skill tab stats: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT path, COUNT(*) AS views FROM visitors GROUP BY path ORDER BY views DESC, path LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("failed to load top paths: %w", err)
	}
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan top paths: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read top paths: %w", err)
	}

	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentVisitors returns the latest page views, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts
		FROM visitors ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors: %w", err)
	}
	defer rows.Close()

	var out []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Cleanup deletes rows older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	var total int64
	for _, table := range []string{"visitors", "events"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE ts < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("failed to clean up %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("failed to count cleaned up %s rows: %w", table, err)
		}
		total += n
	}
	return total, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
