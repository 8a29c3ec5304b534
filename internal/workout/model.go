package workout

import "time"

// Workout is a template in the program catalog, not a logged session.
// Templates repeat across weeks; the variation splits the catalog into the
// alternating A/B sets.
type Workout struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	DayNumber   int       `db:"day_number" json:"day_number"`
	Variation   string    `db:"variation" json:"variation"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
