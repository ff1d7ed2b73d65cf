package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/sherrin/pkg/factory"
)

// File permission constants.
const (
	outputFilePermission = 0600
)

// WriteJSON writes the dataset as a JSON array of records, one object
// per row keyed by column name.
func WriteJSON(_ context.Context, path string, ds *factory.Dataset) error {
	columns := ds.Columns()
	records := make([]map[string]any, 0, ds.Len())
	for _, row := range ds.Rows() {
		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = row[i]
		}
		records = append(records, record)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(path, data, outputFilePermission); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
