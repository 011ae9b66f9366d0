package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"
)

// Workbook is first worksheet of opened xlsx file.
type Workbook struct {
	path  string
	file  *excelize.File
	sheet string

	merged []mergedRange
}

// Open xlsx file by path and select its first worksheet.
func Open(path string) (w *Workbook, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		err = fmt.Errorf("open workbook %s: %w", path, err)
		return
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		err = errNoSheets
		return
	}

	w = &Workbook{
		path:  path,
		file:  f,
		sheet: sheets[0],
	}
	if w.merged, err = readMergedRanges(f, w.sheet); err != nil {
		f.Close()
		w = nil
		err = fmt.Errorf("sheet %s merged cells: %w", sheets[0], err)
	}
	return
}

// Sheet returns name of worksheet in use.
func (w *Workbook) Sheet() string {
	return w.sheet
}

// SetValue writes value to cell. Cell inside merged range is redirected to range anchor.
// Returns cell actually written.
func (w *Workbook) SetValue(cell string, value interface{}) (target string, err error) {
	if target, err = w.anchor(cell); err != nil {
		return
	}
	if err = w.file.SetCellValue(w.sheet, target, value); err != nil {
		err = fmt.Errorf("set %s: %w", target, err)
	}
	return
}

// Value returns formatted text of cell, merged cells read from anchor.
func (w *Workbook) Value(cell string) (string, error) {
	target, err := w.anchor(cell)
	if err != nil {
		return "", err
	}
	return w.file.GetCellValue(w.sheet, target)
}

// FindRow returns first row in [from, to] of col whose text contains label.
// Full-width and half-width forms compare equal.
func (w *Workbook) FindRow(col, from, to int, label string) (int, bool) {
	want := Fold(label)
	for row := from; row <= to; row++ {
		axis, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return 0, false
		}
		value, err := w.file.GetCellValue(w.sheet, axis)
		if err != nil || value == "" {
			continue
		}
		if strings.Contains(Fold(value), want) {
			return row, true
		}
	}
	return 0, false
}

// Save writes workbook back to opened path.
func (w *Workbook) Save() error {
	if err := w.file.Save(); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}
	return nil
}

// Close releases opened file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Fold maps full-width ascii to half-width and half-width katakana to full-width.
func Fold(s string) string {
	return width.Fold.String(s)
}
