package checklist

import (
	"fmt"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/checklist-updater/internal/layout"
	"github.com/geoirb/checklist-updater/internal/payload"
)

// updater writes payload values to workbook cell by cell.
// Failed cell writes are reported as warnings and skipped,
// a value that can not be converted fails the whole update.
type updater struct {
	wb      Workbook
	payload payload.Checklist
	report  *Report

	err    error
	logger log.Logger
}

func (u *updater) field(f layout.Field) {
	if !u.payload.Present(f.Key) {
		return
	}
	switch f.Kind {
	case layout.Date:
		u.text(f.Label, f.Cell, strings.SplitN(u.payload.String(f.Key), " ", 2)[0])
	case layout.Number:
		u.number(f.Label, f.Key, f.Cell)
	case layout.Integer:
		u.integer(f.Label, f.Key, f.Cell)
	default:
		u.text(f.Label, f.Cell, u.payload.Value(f.Key))
	}
}

func (u *updater) number(field, key, cell string) {
	if !u.payload.Present(key) {
		return
	}
	value, err := u.payload.Float(key)
	if err != nil {
		u.fail(field, cell, err)
		return
	}
	u.text(field, cell, value)
}

func (u *updater) integer(field, key, cell string) {
	if !u.payload.Present(key) {
		return
	}
	value, err := u.payload.Int(key)
	if err != nil {
		u.fail(field, cell, err)
		return
	}
	u.text(field, cell, value)
}

func (u *updater) text(field, cell string, value interface{}) {
	target, err := u.wb.SetValue(cell, value)
	if err != nil {
		u.warn(field, cell, err)
		return
	}
	level.Info(u.logger).Log("msg", "updated", "field", field, "cell", target, "value", value)
	u.report.Updated = append(u.report.Updated, Update{
		Field: field,
		Cell:  target,
		Value: value,
	})
}

func (u *updater) warn(field, cell string, err error) {
	level.Warn(u.logger).Log("msg", "could not set cell value", "field", field, "cell", cell, "err", err)
	u.report.Warnings = append(u.report.Warnings, fmt.Sprintf("%s (%s): %s", field, cell, err))
}

// fail keeps the first conversion error.
func (u *updater) fail(field, cell string, err error) {
	level.Error(u.logger).Log("msg", "wrong value", "field", field, "cell", cell, "err", err)
	if u.err == nil {
		u.err = fmt.Errorf("%s (%s): %w", field, cell, err)
	}
}
