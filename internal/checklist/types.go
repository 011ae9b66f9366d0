package checklist

import (
	"time"

	"github.com/geoirb/checklist-updater/internal/payload"
)

// Request for update of checklist workbook.
type Request struct {
	RunID string
	// Workbook overrides configured workbook path.
	Workbook string
	Payload  payload.Checklist
}

// Report of one update.
type Report struct {
	RunID     string    `json:"run_id"`
	Workbook  string    `json:"workbook"`
	Backup    string    `json:"backup,omitempty"`
	Sheet     string    `json:"sheet,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	Verdict   string    `json:"verdict,omitempty"`
	Findings  []string  `json:"findings,omitempty"`
	Updated   []Update  `json:"updated,omitempty"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// Update of one cell.
type Update struct {
	Field string      `json:"field"`
	Cell  string      `json:"cell"`
	Value interface{} `json:"value"`
}
