package mq

import (
	"time"
)

type report struct {
	RunID     string    `json:"run_id"`
	Workbook  string    `json:"workbook"`
	Sheet     string    `json:"sheet,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	Verdict   string    `json:"verdict,omitempty"`
	Findings  []string  `json:"findings,omitempty"`
	Updated   int       `json:"updated"`
	Warnings  []string  `json:"warnings,omitempty"`
}
