package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nconklindev/stockcell/internal/types"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrNoSheets          = errors.New("no sheets found")
)

// SupportedExtensions are the file types ReadRows understands.
var SupportedExtensions = []string{".xlsx", ".xlsm", ".csv"}

// ReadRows reads the first sheet of a spreadsheet into header-keyed rows.
// For CSV input the returned sheet name is empty.
func ReadRows(filePath string) (string, []types.Row, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".csv":
		file, err := os.Open(filePath)
		if err != nil {
			return "", nil, err
		}
		defer file.Close()

		rows, err := ReadCSV(file)
		return "", rows, err
	case ".xlsx", ".xlsm":
		file, err := os.Open(filePath)
		if err != nil {
			return "", nil, err
		}
		defer file.Close()

		return ReadWorkbook(file)
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadWorkbook parses an xlsx container and returns the rows of its first
// sheet. Remaining sheets are ignored.
func ReadWorkbook(r io.Reader) (string, []types.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, ErrNoSheets
	}

	sheetName := sheets[0]
	records, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheetName, nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	return sheetName, recordsToRows(records), nil
}

// ReadCSV parses comma separated input with a header line.
func ReadCSV(r io.Reader) ([]types.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}

	return recordsToRows(records), nil
}

// recordsToRows treats the first record as the header line. Blank headers
// drop their column, repeated headers get a _1, _2... suffix, and rows with
// no values at all are skipped.
func recordsToRows(records [][]string) []types.Row {
	if len(records) == 0 {
		return nil
	}

	headers := uniqueHeaders(records[0])

	var rows []types.Row
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}

		row := make(types.Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(record) {
				value = record[i]
			}
			row[header] = value
		}
		rows = append(rows, row)
	}

	return rows
}

func uniqueHeaders(raw []string) []string {
	seen := make(map[string]int, len(raw))
	headers := make([]string, len(raw))

	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			headers[i] = h + "_" + strconv.Itoa(n+1)
			continue
		}
		seen[h] = 0
		headers[i] = h
	}

	return headers
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
