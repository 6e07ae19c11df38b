package position

import "time"

type Position struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
