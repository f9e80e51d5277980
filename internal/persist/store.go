// Package persist stores named conversation sessions and their turns in
// SQLite, so demo runs can replay history without retyping --turn flags.
package persist

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Session is a named conversation whose turns accumulate across runs.
type Session struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Turn is one stored utterance of a session.
type Turn struct {
	ID        int64
	Role      string // "user" | "assistant"
	Content   string
	CreatedAt time.Time
}

// Store handles persistence of conversation sessions using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new SQLite-backed store at the given path.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// init creates the necessary tables if they don't exist
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL UNIQUE,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS turns (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  INTEGER NOT NULL,
			role        TEXT NOT NULL,
			content     TEXT,
			created_at  TEXT NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		);

		CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id);
		CREATE INDEX IF NOT EXISTS idx_turns_created ON turns(created_at);
	`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetOrCreateSession gets an existing session by name or creates a new one.
func (s *Store) GetOrCreateSession(name string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	nowStr := now.Format(time.RFC3339)

	sess, err := s.getSessionInternal(name)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if sess != nil {
		return sess, nil
	}

	result, err := s.db.Exec(`
		INSERT INTO sessions (name, created_at, updated_at)
		VALUES (?, ?, ?)
	`, name, nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *Store) getSessionInternal(name string) (*Session, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, updated_at
		FROM sessions
		WHERE name = ?
	`, name)

	var sess Session
	var createdAt, updatedAt string
	if err := row.Scan(&sess.ID, &sess.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		sess.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		sess.UpdatedAt = t
	}
	return &sess, nil
}

// AppendTurn adds a turn to a session and bumps the session timestamp.
func (s *Store) AppendTurn(sessionID int64, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowStr := time.Now().Format(time.RFC3339Nano)
	if _, err := s.db.Exec(`
		INSERT INTO turns (session_id, role, content, created_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, role, content, nowStr); err != nil {
		return err
	}

	_, err := s.db.Exec(`UPDATE sessions SET updated_at = ? WHERE id = ?`, nowStr, sessionID)
	return err
}

// Turns returns up to limit most recent turns of a session in chronological
// order. A non-positive limit returns all turns.
func (s *Store) Turns(sessionID int64, limit int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, role, content, created_at
		FROM turns
		WHERE session_id = ?
		ORDER BY created_at DESC, id DESC
	`
	args := []any{sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reversed []Turn
	for rows.Next() {
		var t Turn
		var content sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Role, &content, &createdAt); err != nil {
			return nil, err
		}
		t.Content = content.String
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			t.CreatedAt = ts
		}
		reversed = append(reversed, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// reverse to chronological order
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed, nil
}
