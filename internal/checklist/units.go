package checklist

import (
	"strings"

	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/checklist-updater/internal/layout"
)

// units fills HDD free space rows of SC machines.
func (u *updater) units() {
	for unit := 1; unit <= layout.Units; unit++ {
		cKey := layout.UnitKey(unit, layout.DriveC)
		dKey := layout.UnitKey(unit, layout.DriveD)
		hKey := layout.UnitKey(unit, layout.DriveH)
		if !u.payload.Present(cKey) && !u.payload.Present(dKey) && !u.payload.Present(hKey) {
			continue
		}

		block := layout.Drives(unit)
		label := layout.UnitLabel(unit)
		current, err := u.wb.Value(block.Label)
		if err != nil || !strings.Contains(current, label) {
			u.text(label, block.Label, label)
		}

		u.number(label+" C", cKey, block.C)
		u.number(label+" D", dKey, block.D)
		u.number(label+" H", hKey, block.H)
	}
}

// metrics fills CPU/memory section of SC machines. Section is located by its header.
func (u *updater) metrics() {
	header, ok := u.wb.FindRow(layout.SectionColumn, layout.SectionFirstRow, layout.SectionLastRow, layout.SectionLabel)
	if !ok {
		level.Info(u.logger).Log("msg", "section not found", "section", layout.SectionLabel)
		return
	}
	level.Info(u.logger).Log("msg", "section found", "section", layout.SectionLabel, "row", header)

	for unit := 1; unit <= layout.Units; unit++ {
		cpuKey := layout.UnitKey(unit, layout.CPU)
		memoryKey := layout.UnitKey(unit, layout.Memory)
		if !u.payload.Present(cpuKey) && !u.payload.Present(memoryKey) {
			continue
		}

		block := layout.Metrics(header, unit)
		label := layout.UnitMetricLabel(unit)
		u.text(label, block.Label, label)
		u.number(label+" CPU", cpuKey, block.CPU)
		u.number(label+" memory", memoryKey, block.Memory)
	}
}
