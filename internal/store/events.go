package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// eventTimeLayout is fixed width so timestamps sort lexically.
const eventTimeLayout = "2006-01-02T15:04:05.000000000Z"

// Event is one journaled game trigger.
type Event struct {
	ID     string
	Kind   string
	Detail string
	XP     int
	Level  int
	At     time.Time
}

// RecordEvent appends ev to the journal, assigning an id and timestamp when
// they are missing.
func (d *DB) RecordEvent(ev Event) (Event, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	_, err := d.db.Exec(`INSERT INTO events (id, kind, detail, xp, level, at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Kind, ev.Detail, ev.XP, ev.Level, ev.At.UTC().Format(eventTimeLayout))
	return ev, err
}

// RecentEvents returns up to limit events, newest first.
func (d *DB) RecentEvents(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.db.Query(`SELECT id, kind, detail, xp, level, at
		FROM events ORDER BY at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var ev Event
		var detail sql.NullString
		var at string
		if err := rows.Scan(&ev.ID, &ev.Kind, &detail, &ev.XP, &ev.Level, &at); err != nil {
			return nil, err
		}
		ev.Detail = detail.String
		if ev.At, err = time.Parse(eventTimeLayout, at); err != nil {
			return nil, fmt.Errorf("event %s: bad timestamp %q: %w", ev.ID, at, err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// EventCount returns the number of journaled events.
func (d *DB) EventCount() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count)
	return count, err
}
