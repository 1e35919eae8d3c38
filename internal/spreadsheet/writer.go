// ABOUTME: Writes sample tables to xlsx workbooks with a header row and no index column.
// ABOUTME: Dates are stored as Excel datetimes, numbers as numeric cells.

package spreadsheet

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/2389/bdas/internal/table"
)

// SheetName is the name of the single sheet in every workbook.
const SheetName = "Sheet1"

// DateFormat is the number format applied to date cells.
const DateFormat = "yyyy-mm-dd hh:mm:ss"

// Build renders t into a new workbook. The caller must Close it.
func Build(t *table.Table) (*excelize.File, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	f := excelize.NewFile()
	if err := fill(f, t); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, t *table.Table) error {
	header := make([]any, 0, len(t.Columns()))
	for _, name := range t.Names() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("%w: header: %v", ErrFailedToWrite, err)
	}

	for i := 0; i < t.Rows(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
		}
		row := t.Row(i)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrFailedToWrite, i+1, err)
		}
	}

	return applyStyles(f, t)
}

func applyStyles(f *excelize.File, t *table.Table) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: header style: %v", ErrFailedToWrite, err)
	}

	last, err := excelize.CoordinatesToCellName(len(t.Columns()), 1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("%w: header style: %v", ErrFailedToWrite, err)
	}

	if t.Rows() == 0 {
		return nil
	}

	dateFmt := DateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("%w: date style: %v", ErrFailedToWrite, err)
	}

	for j, c := range t.Columns() {
		if c.Kind != table.KindDate {
			continue
		}
		top, err := excelize.CoordinatesToCellName(j+1, 2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
		}
		bottom, err := excelize.CoordinatesToCellName(j+1, t.Rows()+1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
		}
		if err := f.SetCellStyle(SheetName, top, bottom, dateStyle); err != nil {
			return fmt.Errorf("%w: date style: %v", ErrFailedToWrite, err)
		}

		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
		}
		if err := f.SetColWidth(SheetName, col, col, 20); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
		}
	}
	return nil
}

// Encode writes t as an xlsx workbook to w.
func Encode(w io.Writer, t *table.Table) error {
	f, err := Build(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	return nil
}

// WriteFile writes t to path, replacing any existing file. The workbook is
// fully encoded before path is touched.
func WriteFile(path string, t *table.Table) error {
	f, err := Build(t)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	return nil
}
