package sqlite

import "time"

// Entry is a single row of the kv table
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
