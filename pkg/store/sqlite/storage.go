package sqlite

import (
	"database/sql"
	"fmt"
)

const inventoryCostsSchema = `
	CREATE TABLE IF NOT EXISTS inventory_costs (
		name VARCHAR NOT NULL PRIMARY KEY,
		average_unit_cost DOUBLE NOT NULL
	);
`
const itemCategoriesSchema = `
	CREATE TABLE IF NOT EXISTS item_categories (
		item_name VARCHAR NOT NULL PRIMARY KEY,
		category VARCHAR NOT NULL
	);
`

var bootQueries = []string{
	inventoryCostsSchema,
	itemCategoriesSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the sqlite database and ensures the inventory tables
// exist. The tables are populated out of band; this module only reads.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", settings.DbPath, err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return db, nil
}
