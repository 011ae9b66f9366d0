package xlsx

import (
	"errors"
)

var (
	errNoSheets  = errors.New("workbook has no sheets")
	errWrongCell = errors.New("wrong cell name")
)
