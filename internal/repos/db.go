package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: ":memory:" databases are per-connection in SQLite
	db.SetMaxOpenConns(1)
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
-- One row per entity kind; body is the whole JSON array.
CREATE TABLE IF NOT EXISTS documents(
  kind TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// SQLiteDocument stores the collection as a single row of the documents table.
type SQLiteDocument struct {
	db   *sqlx.DB
	kind string
}

func NewSQLiteDocument(db *sqlx.DB, kind string) *SQLiteDocument {
	return &SQLiteDocument{db: db, kind: kind}
}

func (d *SQLiteDocument) Kind() string { return d.kind }

func (d *SQLiteDocument) Load(ctx context.Context) ([]byte, error) {
	var body string
	err := d.db.GetContext(ctx, &body, `SELECT body FROM documents WHERE kind = ?`, d.kind)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := d.db.ExecContext(ctx, `INSERT OR IGNORE INTO documents(kind, body) VALUES(?, ?)`,
			d.kind, string(emptyCollection)); err != nil {
			return nil, err
		}
		return emptyCollection, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (d *SQLiteDocument) Save(ctx context.Context, data []byte) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO documents(kind, body, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(kind) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
	`, d.kind, string(data))
	return err
}
