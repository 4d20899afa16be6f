package postgres

const (
	SRID4326 = 4326

	// Postgres error codes surfaced on writes.
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// businessColumns is the projection shared by every business read path:
// the business row, its category and its (possibly absent) service area,
// all in one query.
const businessColumns = `
	b.id, b.name, b.description, b.phone, b.email, b.website,
	ST_X(b.location) AS lon, ST_Y(b.location) AS lat,
	b.category_id, b.service_area_id, b.created_at, b.updated_at,
	c.id, c.name, c.slug, c.description,
	sa.id, sa.name, ST_AsGeoJSON(sa.boundary), sa.created_at
`

const businessFrom = `
	FROM businesses b
	JOIN categories c ON c.id = b.category_id
	LEFT JOIN service_areas sa ON sa.id = b.service_area_id
`
