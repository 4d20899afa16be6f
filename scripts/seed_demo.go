//go:build ignore

// Seeds a development database with a small Dublin data set so the
// spatial endpoints return something out of the box.
//
// Usage:
//
//	go run scripts/seed_demo.go -dsn "host=localhost port=5432 user=postgres password=postgres dbname=business_locator sslmode=disable"
package main

import (
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func main() {
	dsn := flag.String("dsn", "host=localhost port=5432 user=postgres password=postgres dbname=business_locator sslmode=disable", "PostgreSQL DSN")
	flag.Parse()

	db, err := sqlx.Connect("pgx", *dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	type category struct {
		name, slug, description string
	}
	categories := []category{
		{"Restaurant", "restaurant", "Food and drink"},
		{"Retail", "retail", "Shops"},
		{"Services", "services", "Trades and professional services"},
	}

	categoryIDs := map[string]int64{}
	for _, c := range categories {
		var id int64
		err := db.QueryRow(`
			INSERT INTO categories (name, slug, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			c.name, c.slug, c.description,
		).Scan(&id)
		if err != nil {
			log.Fatalf("seed category %s: %v", c.slug, err)
		}
		categoryIDs[c.slug] = id
	}

	type area struct {
		name, wkt string
	}
	areas := []area{
		{"City Centre", "POLYGON((-6.28 53.33, -6.24 53.33, -6.24 53.36, -6.28 53.36, -6.28 53.33))"},
		{"Docklands", "POLYGON((-6.24 53.34, -6.22 53.34, -6.22 53.355, -6.24 53.355, -6.24 53.34))"},
	}

	areaIDs := map[string]int64{}
	for _, a := range areas {
		var id int64
		err := db.QueryRow(`
			INSERT INTO service_areas (name, boundary)
			VALUES ($1, ST_SetSRID(ST_GeomFromText($2), 4326))
			ON CONFLICT (name) DO UPDATE SET boundary = EXCLUDED.boundary
			RETURNING id`,
			a.name, a.wkt,
		).Scan(&id)
		if err != nil {
			log.Fatalf("seed area %s: %v", a.name, err)
		}
		areaIDs[a.name] = id
	}

	type business struct {
		name, description, slug string
		lon, lat                float64
		area                    string
	}
	businesses := []business{
		{"Test Bistro", "A small bistro on the quays", "restaurant", -6.26, 53.35, "City Centre"},
		{"Liffey Cafe", "Coffee by the river", "restaurant", -6.265, 53.348, "City Centre"},
		{"Harbour Books", "Independent bookshop", "retail", -6.23, 53.347, "Docklands"},
		{"Suburb Garage", "Repairs and servicing", "services", -6.18, 53.30, ""},
	}

	for _, b := range businesses {
		var areaID interface{}
		if b.area != "" {
			areaID = areaIDs[b.area]
		}
		_, err := db.Exec(`
			INSERT INTO businesses (name, description, location, category_id, service_area_id)
			VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6)`,
			b.name, b.description, b.lon, b.lat, categoryIDs[b.slug], areaID,
		)
		if err != nil {
			log.Fatalf("seed business %s: %v", b.name, err)
		}
	}

	fmt.Printf("Seeded %d categories, %d areas, %d businesses\n",
		len(categories), len(areas), len(businesses))
	fmt.Println("Try: curl 'http://localhost:8080/api/v1/businesses/nearby?lat=53.35&lon=-6.26&radius=1500'")
}
