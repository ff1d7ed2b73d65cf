package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/okian/sherrin/pkg/factory"
)

// WriteCSV writes the dataset as CSV with a header row.
func WriteCSV(_ context.Context, path string, ds *factory.Dataset) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer file.Close() //nolint:errcheck // flush errors surface via writer.Error

	writer := csv.NewWriter(file)
	if err := writer.Write(ds.Columns()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	cells := make([]string, len(ds.Columns()))
	for _, row := range ds.Rows() {
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		if err := writer.Write(cells); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func formatCell(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
