// Package dataset extracts numeric columns from Excel and CSV files for the
// describe command.
package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"statlib/internal"
	"statlib/internal/errors"
)

// Reader handles reading tabular data from Excel and CSV files.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewReader creates a reader for the given file, dispatching on extension.
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger,
	}
}

// LoadColumn reads the named column as float64 values. The first row is the
// header; cells that do not parse as numbers are skipped with a debug log.
// A missing file or column is an error.
func (r *Reader) LoadColumn(name string) ([]float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("file " + r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.InvalidInput("file has no rows: " + r.filePath)
	}

	col := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), name) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.NotFound("column " + name)
	}

	values := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			r.logger.Debug("skipping non-numeric cell %q at row %d of %s", cell, i+2, r.filePath)
			continue
		}
		values = append(values, v)
	}

	return values, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ParseError("opening Excel file "+r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("workbook has no sheets: " + r.filePath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseError("reading sheet "+sheets[0], err)
	}
	return rows, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ParseError("opening CSV file "+r.filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError("reading CSV file "+r.filePath, err)
	}
	return rows, nil
}
