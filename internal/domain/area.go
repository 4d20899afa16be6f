package domain

import "time"

// ServiceArea is a named WGS84 polygon used for containment queries.
// Deleting an area does not delete dependent businesses; their reference
// is nulled out (ON DELETE SET NULL).
type ServiceArea struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Boundary  Polygon   `json:"boundary" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
