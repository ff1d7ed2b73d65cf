package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/sherrin/pkg/factory"
)

// WriteSQLite writes the dataset into a SQLite database file, one table
// per dataset. An existing table of the same name is replaced so
// repeated generation runs stay idempotent.
func WriteSQLite(ctx context.Context, path, table string, ds *factory.Dataset) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer db.Close() //nolint:errcheck // read-only close after explicit commit

	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(table)); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if _, err := db.ExecContext(ctx, createTableStmt(table, ds)); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertStmt(table, ds))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer stmt.Close() //nolint:errcheck // statement closes with the tx

	for _, row := range ds.Rows() {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// createTableStmt infers column affinities from the first row. Empty
// datasets get all-TEXT columns, which is fine for an empty table.
func createTableStmt(table string, ds *factory.Dataset) string {
	columns := ds.Columns()
	var sample []any
	if rows := ds.Rows(); len(rows) > 0 {
		sample = rows[0]
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		affinity := "TEXT"
		if sample != nil {
			switch sample[i].(type) {
			case int, int64:
				affinity = "INTEGER"
			case float64:
				affinity = "REAL"
			}
		}
		defs[i] = quoteIdent(col) + " " + affinity
	}
	return "CREATE TABLE " + quoteIdent(table) + " (" + strings.Join(defs, ", ") + ")"
}

func insertStmt(table string, ds *factory.Dataset) string {
	columns := ds.Columns()
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		placeholders[i] = "?"
	}
	return "INSERT INTO " + quoteIdent(table) +
		" (" + strings.Join(quoted, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
