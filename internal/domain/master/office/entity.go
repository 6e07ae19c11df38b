package office

import "time"

type Office struct {
	ID        string
	Name      string
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
