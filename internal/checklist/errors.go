package checklist

import (
	"errors"
)

var (
	// ErrWorkbookNotFound is returned when workbook file does not exist.
	ErrWorkbookNotFound = errors.New("workbook not found")

	errBackup = errors.New("backup workbook")
)
