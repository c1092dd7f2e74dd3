package sqlite

import "database/sql"

// schema runs on startup to ensure tables exist.
// bill_id and name are copied out of the document for inspection with the
// sqlite3 shell; the document column is the source of truth.
const schema = `
CREATE TABLE IF NOT EXISTS bill_documents (
    key TEXT PRIMARY KEY,
    bill_id TEXT NOT NULL,
    name TEXT NOT NULL,
    document TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bill_documents_bill_id ON bill_documents(bill_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
