package checklist

import (
	"context"
)

// Service of checklist workbook.
type Service interface {
	Update(ctx context.Context, req Request) (rep Report, err error)
}

// Workbook opened for update.
type Workbook interface {
	Sheet() string
	SetValue(cell string, value interface{}) (target string, err error)
	Value(cell string) (string, error)
	FindRow(col, from, to int, label string) (row int, ok bool)
	Save() error
	Close() error
}
