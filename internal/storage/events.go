package storage

import (
	"fmt"
	"strings"
	"time"
)

// EventKind is what an event records.
type EventKind string

const (
	EventMove  EventKind = "move"
	EventReset EventKind = "reset"
)

// Event is one journal entry.
type Event struct {
	EventID   int64
	SessionID string
	Seq       int
	At        time.Duration // since session start
	Kind      EventKind
	Notation  string
	Origin    string
}

// Events returns a session's events in sequence order.
func (db *DB) Events(sessionID string) ([]Event, error) {
	rows, err := db.Query(`
		SELECT event_id, session_id, seq, ts_ms, kind, notation, origin
		FROM events
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("storage: get events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e    Event
			ts   int64
			kind string
		)
		if err := rows.Scan(&e.EventID, &e.SessionID, &e.Seq, &ts, &kind, &e.Notation, &e.Origin); err != nil {
			return nil, fmt.Errorf("storage: scan event: %w", err)
		}
		e.At = time.Duration(ts) * time.Millisecond
		e.Kind = EventKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountEvents returns the number of events recorded for a session.
func (db *DB) CountEvents(sessionID string) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM events WHERE session_id = ?", sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: count events: %w", err)
	}
	return n, nil
}

// MoveString joins the notation of every move after the session's last
// reset, the sequence that produced the final state.
func MoveString(events []Event) string {
	var parts []string
	for _, e := range events {
		switch e.Kind {
		case EventReset:
			parts = parts[:0]
		case EventMove:
			parts = append(parts, e.Notation)
		}
	}
	return strings.Join(parts, " ")
}
