package spreadsheet

import "errors"

var (
	ErrNilTable      = errors.New("table is nil")
	ErrNoSheets      = errors.New("workbook has no sheets")
	ErrMissingHeader = errors.New("sheet has no header row")

	// I/O errors, wrapped with the underlying cause
	ErrFailedToWrite = errors.New("failed to write workbook")
	ErrFailedToRead  = errors.New("failed to read workbook")
)
