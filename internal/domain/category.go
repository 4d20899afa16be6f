package domain

// Category classifies businesses. Deleting a category deletes every
// business referencing it; the ownership is enforced by the database
// foreign key (ON DELETE CASCADE).
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
