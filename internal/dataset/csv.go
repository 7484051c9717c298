package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV reads one example per record. The field at labelColumn holds the
// 0/1 label and every other field is a numeric feature. With hasHeader the
// first record is skipped.
//
// CSV format (label in column 0):
//
//	label,x0,x1
//	1,0.5,-1.2
//	0,0.1,3.4
func LoadCSV(r io.Reader, labelColumn int, hasHeader bool) (*Dataset, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	rows := make([][]float64, len(records))
	labels := make([]float64, len(records))
	for i, record := range records {
		if labelColumn < 0 || labelColumn >= len(record) {
			return nil, fmt.Errorf("row %d: label column %d out of range (%d fields)", i+1, labelColumn, len(record))
		}

		label, err := strconv.ParseFloat(record[labelColumn], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid label at row %d: %w", i+1, err)
		}
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("label at row %d is %v, want 0 or 1", i+1, label)
		}
		labels[i] = label

		row := make([]float64, 0, len(record)-1)
		for j, field := range record {
			if j == labelColumn {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at row %d, column %d: %w", i+1, j+1, err)
			}
			row = append(row, v)
		}
		rows[i] = row
	}
	return fromRows(rows, labels)
}

// LoadCSVFile opens path and reads it with LoadCSV.
func LoadCSVFile(path string, labelColumn int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, labelColumn, hasHeader)
}
