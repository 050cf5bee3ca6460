package positions

import "time"

// Position status values.
const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// Position is a job opening candidates apply against. Requirements is
// free text, one requirement per line.
type Position struct {
	ID           string
	Title        string
	Department   string
	Description  string
	Requirements string
	Status       string
	CreatedAt    time.Time
}
