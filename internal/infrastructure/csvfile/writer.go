// Package csvfile serializes fetched records into a CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	v1 "github.com/ariel055132/stockinfo/internal/domain/stock/v1"
	"github.com/ariel055132/stockinfo/pkg/errors"
	"github.com/ariel055132/stockinfo/pkg/logger"
)

// Writer is the interface for persisting records as CSV.
//
//go:generate mockgen -source writer.go -destination=mock/writer_mock.go -package=csvfile_mock
type Writer interface {
	Save(ctx context.Context, records []v1.Record, path string) error
}

// FileWriter writes records to a file on the local filesystem.
type FileWriter struct {
	logger logger.Interface
}

// NewWriter creates a new CSV file writer.
func NewWriter(logger logger.Interface) *FileWriter {
	return &FileWriter{logger: logger}
}

// Columns returns the union of field names across all records, in first-seen
// order: the first record's keys come first, later records append only the
// keys not seen before.
func Columns(records []v1.Record) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, record := range records {
		for _, key := range record.Keys() {
			if seen[key] {
				continue
			}
			seen[key] = true
			columns = append(columns, key)
		}
	}
	return columns
}

// Save writes a header row of column names followed by one row per record,
// in input order. Records missing a column get an empty cell. An existing
// file at path is overwritten; with no records the file is left empty.
func (w *FileWriter) Save(ctx context.Context, records []v1.Record, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewErrorDetails(
			fmt.Sprintf("create %s: %v", path, err), errors.CSVWriteError, "path")
	}
	defer file.Close()

	columns := Columns(records)
	if len(columns) > 0 {
		cw := csv.NewWriter(file)
		if err := cw.Write(columns); err != nil {
			return errors.NewErrorDetails(
				fmt.Sprintf("write header: %v", err), errors.CSVWriteError, "")
		}

		row := make([]string, len(columns))
		for _, record := range records {
			for i, column := range columns {
				value, ok := record.Value(column)
				if !ok {
					row[i] = ""
					continue
				}
				row[i] = formatCell(value)
			}
			if err := cw.Write(row); err != nil {
				return errors.NewErrorDetails(
					fmt.Sprintf("write row: %v", err), errors.CSVWriteError, "")
			}
		}

		cw.Flush()
		if err := cw.Error(); err != nil {
			return errors.NewErrorDetails(
				fmt.Sprintf("flush %s: %v", path, err), errors.CSVWriteError, "")
		}
	}

	if err := file.Close(); err != nil {
		return errors.NewErrorDetails(
			fmt.Sprintf("close %s: %v", path, err), errors.CSVWriteError, "")
	}

	w.logger.InfoContext(ctx, "data saved",
		logger.NewField("file", path),
		logger.NewField("rows", len(records)),
	)
	return nil
}

// formatCell renders one scalar the way it appeared on the wire: numbers
// keep their upstream text, null becomes an empty cell.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		// non-scalar values are passed through upstream untouched
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}
