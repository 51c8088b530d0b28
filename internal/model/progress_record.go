package model

import (
	"time"
)

type ProgressRecord struct {
	ID        string    `db:"id"`
	TargetID  string    `db:"target_id"`
	EntryDate time.Time `db:"entry_date"`
	Value     *float64  `db:"value"`
	ItemName  *string   `db:"item_name"`
	CreatedAt time.Time `db:"created_at"`
}

// Today truncates t to a UTC calendar date, the default entry date.
func Today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
