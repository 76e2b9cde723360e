package domain

import "time"

type Todo struct {
	ID          uint64
	Title       string
	Description string
	Done        bool
	DueAt       *time.Time
	CategoryID  *uint64
	CreatedAt   time.Time
	ModifiedAt  time.Time
	// Category is only populated by read queries joining categories.
	Category *Category
}
