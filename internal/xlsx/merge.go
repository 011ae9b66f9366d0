package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type mergedRange struct {
	anchor string

	col1, row1 int
	col2, row2 int
}

func (r mergedRange) contains(col, row int) bool {
	return r.col1 <= col && col <= r.col2 && r.row1 <= row && row <= r.row2
}

func readMergedRanges(file *excelize.File, sheet string) (ranges []mergedRange, err error) {
	mergedCells, err := file.GetMergeCells(sheet)
	if err != nil {
		return
	}
	for _, mergedCell := range mergedCells {
		r := mergedRange{
			anchor: mergedCell.GetStartAxis(),
		}
		if r.col1, r.row1, err = excelize.CellNameToCoordinates(mergedCell.GetStartAxis()); err != nil {
			return
		}
		if r.col2, r.row2, err = excelize.CellNameToCoordinates(mergedCell.GetEndAxis()); err != nil {
			return
		}
		ranges = append(ranges, r)
	}
	return
}

// anchor returns top-left cell of merged range containing cell, cell itself otherwise.
func (w *Workbook) anchor(cell string) (string, error) {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errWrongCell, cell)
	}
	for _, r := range w.merged {
		if r.contains(col, row) {
			return r.anchor, nil
		}
	}
	return cell, nil
}
