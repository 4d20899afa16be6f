package domain

import "time"

// Business is a point-located record belonging to exactly one category
// and at most one service area.
type Business struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	Website     string    `json:"website" db:"website"`
	Location    Point     `json:"location" db:"-"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	AreaID      *int64    `json:"service_area_id" db:"service_area_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Resolved relations, eagerly loaded on every read path.
	Category *Category    `json:"category,omitempty" db:"-"`
	Area     *ServiceArea `json:"service_area,omitempty" db:"-"`

	// Distance in meters to the query center. Only set by spatial
	// queries, never persisted.
	Distance *float64 `json:"distance,omitempty" db:"-"`
}

// BusinessFilter composes the non-spatial modifiers shared by listings and
// all three spatial queries.
type BusinessFilter struct {
	CategorySlugs []string
	AreaName      string
	Search        string
}
