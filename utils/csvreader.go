package utils

import (
	"encoding/csv"
	"io"
)

// NewCSVReader returns a reader that accepts rows with a varying number of fields.
func NewCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// ParseCSV reads every record. Rows may carry a varying number of fields.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := NewCSVReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}

func WriteCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
