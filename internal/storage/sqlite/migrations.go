package sqlite

import "database/sql"

// schema holds one table per entity kind. The position column preserves
// store order, which is insertion order with deletions closed up. Record IDs
// are not keys: uniqueness is the record store's job.
const schema = `
CREATE TABLE IF NOT EXISTS plans (
    position INTEGER PRIMARY KEY,
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS equipment (
    position INTEGER PRIMARY KEY,
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    quantity INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    position INTEGER PRIMARY KEY,
    id INTEGER NOT NULL,
    username TEXT NOT NULL,
    password TEXT NOT NULL,
    name TEXT NOT NULL,
    current_plan_id INTEGER NOT NULL DEFAULT -1
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
