package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Shopping lists. Items live in items_json as an ordered JSON document;
-- the table is the record index, the column is the document body.
CREATE TABLE IF NOT EXISTS shopping_lists(
  id TEXT PRIMARY KEY,
  awid TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT 'Obecné',
  state TEXT NOT NULL DEFAULT 'active' CHECK (state IN ('active','archived','deleted')),
  owner_id TEXT NOT NULL,
  items_json TEXT NOT NULL DEFAULT '[]',
  done INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_owner_state ON shopping_lists(owner_id, state);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_awid        ON shopping_lists(awid);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_updated_at  ON shopping_lists(updated_at);
`
	_, err := db.Exec(schema)
	return err
}
