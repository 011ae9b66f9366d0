package checklist

import (
	"strings"

	"github.com/geoirb/checklist-updater/internal/layout"
	"github.com/geoirb/checklist-updater/internal/payload"
)

// findings of payload that need attention.
func (s *service) findings(c payload.Checklist) (findings []string, err error) {
	if c.String(layout.ModuleKey) == layout.ErrorStatus || c.String(layout.EnclosureKey) == layout.ErrorStatus {
		findings = append(findings, layout.FindingFTServer)
	}
	if c.Present(layout.CPUUsageKey) {
		var usage float64
		if usage, err = c.Float(layout.CPUUsageKey); err != nil {
			return
		}
		if usage > s.cpuThreshold {
			findings = append(findings, layout.FindingCPU(c.Text(layout.CPUUsageKey)))
		}
	}
	return
}

// verdict writes check result and check content.
// Explicit checkResult wins over the automatic one.
func (s *service) verdict(u *updater) {
	findings, err := s.findings(u.payload)
	if err != nil {
		u.fail("確認内容", layout.FindingsCell, err)
		return
	}
	u.report.Findings = findings

	switch {
	case u.payload.Present(layout.ResultKey):
		u.report.Verdict = u.payload.String(layout.ResultKey)
		u.text("確認結果", layout.ResultCell, u.payload.Value(layout.ResultKey))
	case len(findings) > 0:
		u.report.Verdict = layout.VerdictAttention
		u.text("確認結果", layout.ResultCell, layout.VerdictAttention)
	default:
		u.report.Verdict = layout.VerdictOK
		u.text("確認結果", layout.ResultCell, layout.VerdictOK)
	}

	content := layout.DefaultFindings
	if len(findings) > 0 {
		content = strings.Join(findings, layout.FindingsSep)
	}
	u.text("確認内容", layout.FindingsCell, content)
}
