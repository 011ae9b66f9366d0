package mq

import (
	"github.com/geoirb/checklist-updater/internal/checklist"
)

type builder func(payload interface{}, err error) ([]byte, error)

// ReportTransport ...
type ReportTransport struct {
	builder builder
}

func NewReportTransport(
	builder builder,
) *ReportTransport {
	return &ReportTransport{
		builder: builder,
	}
}

// EncodeReport builds message of update result.
func (t *ReportTransport) EncodeReport(rep checklist.Report, err error) ([]byte, error) {
	payload := report{
		RunID:     rep.RunID,
		Workbook:  rep.Workbook,
		Sheet:     rep.Sheet,
		UpdatedAt: rep.UpdatedAt,
		Verdict:   rep.Verdict,
		Findings:  rep.Findings,
		Updated:   len(rep.Updated),
		Warnings:  rep.Warnings,
	}
	return t.builder(payload, err)
}
