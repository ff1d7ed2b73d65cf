// Package sink writes generated datasets to durable fixture files.
// All sinks consume table-shaped datasets; the JSON sink converts to
// records on the way out.
package sink

import (
	"context"
	"fmt"

	"github.com/okian/sherrin/pkg/factory"
)

// Format names a supported output format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatSQLite:
		return "db"
	default:
		return string(f)
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatSQLite:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write dispatches to the sink for the given format. name is the
// dataset name, used as the table name by the SQLite sink.
func Write(ctx context.Context, format Format, path, name string, ds *factory.Dataset) error {
	if ds.Shape() != factory.ShapeTable {
		return fmt.Errorf("%w: sinks require table-shaped datasets", ErrShape)
	}
	switch format {
	case FormatJSON:
		return WriteJSON(ctx, path, ds)
	case FormatCSV:
		return WriteCSV(ctx, path, ds)
	case FormatSQLite:
		return WriteSQLite(ctx, path, name, ds)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
