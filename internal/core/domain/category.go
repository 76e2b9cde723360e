package domain

import "time"

type Category struct {
	ID         uint64
	Name       string
	Color      string
	CreatedAt  time.Time
	ModifiedAt time.Time
}
