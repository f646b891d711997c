package hhts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// readFrame loads one delimited extract into a frame. The first record
// is the header; short rows are padded with nulls since the extracts
// trim trailing empty fields.
func readFrame(path string) (*Frame, error) {
	inputF, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = inputF.Close() }()

	inputCSV := csv.NewReader(inputF)
	inputCSV.FieldsPerRecord = -1 // Allow variable numbers of fields

	header, err := inputCSV.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	f := NewFrame(header...)

	rowCount := 0
	for {
		row, err := inputCSV.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		} else if len(row) > len(header) {
			return nil, fmt.Errorf("read %s: row %d has %d fields, header has %d: %w",
				path, rowCount+1, len(row), len(header), ErrInvalidInput)
		}
		f.AppendRow(row...)
		rowCount++
	}

	slog.Info(fmt.Sprintf("Read %d rows from %s", rowCount, path))
	return f, nil
}
