package errors

import "net/http"

var (
	ErrBusinessNotFound = New(
		"BUSINESS_NOT_FOUND",
		"Business not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrAreaNotFound = New(
		"SERVICE_AREA_NOT_FOUND",
		"Service area not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"lat and lon query params are required and must be numeric",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"radius must be a non-negative number of meters",
		http.StatusBadRequest,
	)

	ErrInvalidLimit = New(
		"INVALID_LIMIT",
		"limit must be a positive integer",
		http.StatusBadRequest,
	)

	ErrAreaNameRequired = New(
		"AREA_NAME_REQUIRED",
		"name query param is required",
		http.StatusBadRequest,
	)

	ErrInvalidGeometry = New(
		"INVALID_GEOMETRY",
		"Invalid geometry provided",
		http.StatusBadRequest,
	)

	// ErrInvalidReference covers writes pointing at a nonexistent
	// category or service area. It is a client error, not a 404.
	ErrInvalidReference = New(
		"INVALID_REFERENCE",
		"Referenced category or service area does not exist",
		http.StatusBadRequest,
	)

	ErrDuplicateName = New(
		"DUPLICATE_NAME",
		"A record with this name or slug already exists",
		http.StatusConflict,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
