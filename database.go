package main

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// History is an append-only log of timer actions. It never feeds timer
// state back; timers always boot zeroed.
type History struct {
	db *sql.DB
}

type TimerEvent struct {
	ID        int64  `json:"id"`
	Timer     int    `json:"timer"`
	Action    string `json:"action"`
	Seconds   int64  `json:"seconds"`
	Timestamp int64  `json:"timestamp"`
}

func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timer INTEGER NOT NULL,
		action TEXT NOT NULL,
		seconds INTEGER NOT NULL,
		timestamp INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()

		return nil, err
	}

	return &History{
		db: db,
	}, nil
}

// Record stores one action together with the timer's post-operation
// second count.
func (h *History) Record(timer int, action string, seconds int64) error {
	_, err := h.db.Exec("INSERT INTO events (timer, action, seconds, timestamp) VALUES (?, ?, ?, ?)", timer, action, seconds, time.Now().Unix())

	return err
}

// Recent returns up to limit events, newest first.
func (h *History) Recent(limit int) ([]TimerEvent, error) {
	rows, err := h.db.Query("SELECT id, timer, action, seconds, timestamp FROM events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	events := []TimerEvent{}

	for rows.Next() {
		var event TimerEvent

		err = rows.Scan(&event.ID, &event.Timer, &event.Action, &event.Seconds, &event.Timestamp)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
