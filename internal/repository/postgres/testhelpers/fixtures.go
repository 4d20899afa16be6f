package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetCategoryIDBySlug returns the internal ID for a category given its slug
func GetCategoryIDBySlug(db *sql.DB, slug string) (int64, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM categories WHERE slug = $1", slug).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get category ID by slug %q: %w", slug, err)
	}
	return id, nil
}

// GetAreaIDByName returns the internal ID for a service area given its name
func GetAreaIDByName(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM service_areas WHERE lower(name) = lower($1)", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get area ID by name %q: %w", name, err)
	}
	return id, nil
}
