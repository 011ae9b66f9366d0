package checklist

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/checklist-updater/internal/layout"
)

// OpenFunc opens workbook by path.
type OpenFunc func(path string) (Workbook, error)

type path interface {
	Workbook() string
	Backup(src string) (string, error)
}

type service struct {
	path path
	open OpenFunc
	now  func() time.Time

	cpuThreshold float64

	logger log.Logger
}

// NewService ...
// cpuThreshold is cpu usage in percent above which run needs attention.
func NewService(
	path path,
	open OpenFunc,
	now func() time.Time,

	cpuThreshold float64,

	logger log.Logger,
) Service {
	return &service{
		path:         path,
		open:         open,
		now:          now,
		cpuThreshold: cpuThreshold,
		logger:       logger,
	}
}

// Update fills workbook by req payload and saves it in place.
func (s *service) Update(ctx context.Context, req Request) (rep Report, err error) {
	logger := log.WithPrefix(s.logger, "method", "Update", "run_id", req.RunID)

	rep = Report{
		RunID:    req.RunID,
		Workbook: req.Workbook,
	}
	if rep.Workbook == "" {
		rep.Workbook = s.path.Workbook()
	}

	if _, err = os.Stat(rep.Workbook); err != nil {
		level.Error(logger).Log("msg", "workbook not found", "path", rep.Workbook, "err", err)
		err = fmt.Errorf("%w: %s", ErrWorkbookNotFound, rep.Workbook)
		return
	}

	if rep.Backup, err = s.path.Backup(rep.Workbook); err != nil {
		level.Error(logger).Log("msg", "backup", "path", rep.Workbook, "err", err)
		err = fmt.Errorf("%w: %s", errBackup, err)
		return
	}
	if rep.Backup != "" {
		level.Info(logger).Log("msg", "backup created", "path", rep.Backup)
	}

	if err = ctx.Err(); err != nil {
		return
	}

	wb, err := s.open(rep.Workbook)
	if err != nil {
		level.Error(logger).Log("msg", "open workbook", "path", rep.Workbook, "err", err)
		return
	}
	defer wb.Close()

	rep.Sheet = wb.Sheet()
	level.Info(logger).Log("msg", "updating sheet", "sheet", rep.Sheet)

	u := &updater{
		wb:      wb,
		payload: req.Payload,
		report:  &rep,
		logger:  logger,
	}

	rep.UpdatedAt = s.now()
	u.text(layout.UpdatedLabel, layout.UpdatedLabelCell, layout.UpdatedLabel)
	u.text(layout.UpdatedLabel, layout.UpdatedAtCell, rep.UpdatedAt.Format(layout.TimestampLayout))

	s.verdict(u)
	for _, f := range layout.Fields() {
		u.field(f)
	}
	u.units()
	u.metrics()

	for _, key := range req.Payload.UnknownUnitKeys(layout.Units) {
		level.Warn(logger).Log("msg", "unit out of range, key ignored", "key", key)
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: unit out of range 1..%d", key, layout.Units))
	}

	if u.err != nil {
		level.Error(logger).Log("msg", "workbook left unchanged", "path", rep.Workbook, "err", u.err)
		err = u.err
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}
	if err = wb.Save(); err != nil {
		level.Error(logger).Log("msg", "save workbook", "path", rep.Workbook, "err", err)
		return
	}
	level.Info(logger).Log(
		"msg", "workbook updated",
		"path", rep.Workbook,
		"updated", len(rep.Updated),
		"warnings", len(rep.Warnings),
	)
	return
}
