package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/business-locator/internal/domain/repository"
	"github.com/business-locator/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewBusinessRepositoryForTest creates a business repository with test database and logger
func NewBusinessRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BusinessRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewBusinessRepository(pgDB)
}

// NewCategoryRepositoryForTest creates a category repository with test database and logger
func NewCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CategoryRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewCategoryRepository(pgDB)
}

// NewAreaRepositoryForTest creates a service area repository with test database and logger
func NewAreaRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AreaRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewAreaRepository(pgDB)
}
