// ABOUTME: Reads xlsx workbooks back into sample tables.
// ABOUTME: Column kinds are inferred from cell styles (dates) and raw cell values.

package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/2389/bdas/internal/table"
)

// Decode reads the first sheet of the workbook in r.
func Decode(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	defer f.Close()
	return readFile(f)
}

// ReadFile reads the first sheet of the workbook at path.
func ReadFile(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	defer f.Close()
	return readFile(f)
}

func readFile(f *excelize.File) (*table.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrMissingHeader
	}

	header := rows[0]
	data := rows[1:]

	cols := make([]table.Column, len(header))
	for j, name := range header {
		raw := make([]string, len(data))
		for i, row := range data {
			if j < len(row) {
				raw[i] = row[j]
			}
		}

		isDate, err := isDateColumn(f, sheet, j, len(data))
		if err != nil {
			return nil, err
		}
		col, err := parseColumn(name, raw, isDate)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	return table.New(cols...)
}

func isDateColumn(f *excelize.File, sheet string, col, rows int) (bool, error) {
	if rows == 0 {
		return false, nil
	}
	cell, err := excelize.CoordinatesToCellName(col+1, 2)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if styleID == 0 {
		return false, nil
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt), nil
	}
	return isBuiltinDateFormat(style.NumFmt), nil
}

// isDateFormat reports whether a custom number format renders a date.
func isDateFormat(format string) bool {
	lower := strings.ToLower(format)
	return strings.Contains(lower, "yy") || strings.Contains(lower, "dd")
}

func isBuiltinDateFormat(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}

func parseColumn(name string, raw []string, isDate bool) (table.Column, error) {
	if isDate {
		values := make([]any, len(raw))
		for i, s := range raw {
			serial, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return table.Column{}, fmt.Errorf("%w: %s row %d: %q is not a date", ErrFailedToRead, name, i+1, s)
			}
			d, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				return table.Column{}, fmt.Errorf("%w: %s row %d: %v", ErrFailedToRead, name, i+1, err)
			}
			values[i] = d
		}
		return table.Column{Name: name, Kind: table.KindDate, Values: values}, nil
	}

	if ints, ok := parseInts(raw); ok {
		return table.Column{Name: name, Kind: table.KindInt, Values: ints}, nil
	}
	if floats, ok := parseFloats(raw); ok {
		return table.Column{Name: name, Kind: table.KindFloat, Values: floats}, nil
	}

	values := make([]any, len(raw))
	for i, s := range raw {
		values[i] = s
	}
	return table.Column{Name: name, Kind: table.KindString, Values: values}, nil
}

func parseInts(raw []string) ([]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	out := make([]any, len(raw))
	for i, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func parseFloats(raw []string) ([]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	out := make([]any, len(raw))
	for i, s := range raw {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
