package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Session is one run of the viewer or the apply command. It implements
// app.Journal. A Session returned by StartSession is owned by a single
// goroutine.
type Session struct {
	ID        string
	Source    string
	StartedAt time.Time
	EndedAt   *time.Time
	MoveCount int

	db    *DB
	seq   int
	clock func() time.Time
}

// StartSession inserts a new session row.
func (db *DB) StartSession(source string) (*Session, error) {
	s := &Session{
		ID:     uuid.New().String(),
		Source: source,
		db:     db,
		clock:  db.now,
	}
	s.StartedAt = s.clock()

	_, err := db.Exec(`
		INSERT INTO sessions (session_id, source, started_ms)
		VALUES (?, ?, ?)
	`, s.ID, s.Source, s.StartedAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("storage: create session: %w", err)
	}
	return s, nil
}

// RecordMove appends a move event. The move's own timestamp is used when
// set.
func (s *Session) RecordMove(m cube.Move, origin string) error {
	at := m.Time
	if at.IsZero() {
		at = s.clock()
	}
	return s.record(EventMove, m.Notation(), origin, at)
}

// RecordReset appends a reset event.
func (s *Session) RecordReset(origin string) error {
	return s.record(EventReset, "", origin, s.clock())
}

func (s *Session) record(kind EventKind, notation, origin string, at time.Time) error {
	if s.EndedAt != nil {
		return ErrSessionEnded
	}
	seq := s.seq + 1
	ts := at.Sub(s.StartedAt).Milliseconds()
	if ts < 0 {
		ts = 0
	}

	err := s.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO events (session_id, seq, ts_ms, kind, notation, origin)
			VALUES (?, ?, ?, ?, ?, ?)
		`, s.ID, seq, ts, string(kind), notation, origin)
		if err != nil {
			return fmt.Errorf("storage: insert event: %w", err)
		}
		if kind != EventMove {
			return nil
		}
		if _, err := tx.Exec(`UPDATE sessions SET move_count = move_count + 1 WHERE session_id = ?`, s.ID); err != nil {
			return fmt.Errorf("storage: update move count: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.seq = seq
	if kind == EventMove {
		s.MoveCount++
	}
	return nil
}

// End stamps the session's end time. Further records fail.
func (s *Session) End() error {
	if s.EndedAt != nil {
		return nil
	}
	now := s.clock()
	if _, err := s.db.Exec(`UPDATE sessions SET ended_ms = ? WHERE session_id = ?`, now.UnixMilli(), s.ID); err != nil {
		return fmt.Errorf("storage: end session: %w", err)
	}
	s.EndedAt = &now
	return nil
}

// Duration returns how long the session ran, or 0 while it is open.
func (s *Session) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

const sessionColumns = `session_id, source, started_ms, ended_ms, move_count`

func scanSession(row interface{ Scan(...any) error }) (Session, error) {
	var (
		s       Session
		started int64
		ended   sql.NullInt64
	)
	if err := row.Scan(&s.ID, &s.Source, &started, &ended, &s.MoveCount); err != nil {
		return Session{}, err
	}
	s.StartedAt = time.UnixMilli(started)
	if ended.Valid {
		t := time.UnixMilli(ended.Int64)
		s.EndedAt = &t
	}
	return s, nil
}

// ListSessions returns the most recent sessions first. limit <= 0 means all.
func (db *DB) ListSessions(limit int) ([]Session, error) {
	q := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY started_ms DESC, session_id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSession finds a session by id or unique id prefix. The prefix is
// compared literally; % and _ are not wildcards.
func (db *DB) GetSession(idOrPrefix string) (*Session, error) {
	rows, err := db.Query(`
		SELECT `+sessionColumns+` FROM sessions
		WHERE substr(session_id, 1, length(?)) = ?
		LIMIT 2
	`, idOrPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("storage: get session: %w", err)
	}
	defer rows.Close()

	var found []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan session: %w", err)
		}
		if s.ID == idOrPrefix {
			return &s, nil
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, idOrPrefix)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, idOrPrefix)
	}
}

// DeleteSession removes a session and its events.
func (db *DB) DeleteSession(id string) error {
	res, err := db.Exec(`DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// IsNotFound reports whether err means the session does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}
