package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoirb/checklist-updater/internal/layout"
)

func TestDrives(t *testing.T) {
	assert.Equal(t, layout.DriveBlock{Label: "E24", C: "H24", D: "M24", H: "R24"}, layout.Drives(1))
	assert.Equal(t, layout.DriveBlock{Label: "E35", C: "H35", D: "M35", H: "R35"}, layout.Drives(12))
}

func TestMetrics(t *testing.T) {
	type testCase struct {
		unit     int
		expected layout.MetricBlock
	}
	tests := []testCase{
		{unit: 1, expected: layout.MetricBlock{Label: "E41", CPU: "G41", Memory: "K41"}},
		{unit: 2, expected: layout.MetricBlock{Label: "O41", CPU: "Q41", Memory: "U41"}},
		{unit: 3, expected: layout.MetricBlock{Label: "E42", CPU: "G42", Memory: "K42"}},
		{unit: 11, expected: layout.MetricBlock{Label: "E46", CPU: "G46", Memory: "K46"}},
		{unit: 12, expected: layout.MetricBlock{Label: "O46", CPU: "Q46", Memory: "U46"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, layout.Metrics(40, test.unit), test.unit)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "sc7_memory", layout.UnitKey(7, layout.Memory))
	assert.Equal(t, "SC-7", layout.UnitLabel(7))
	assert.Equal(t, "SC-7:", layout.UnitMetricLabel(7))
	assert.Equal(t, "CPU高負荷(85%)", layout.FindingCPU("85"))
}

func TestFields(t *testing.T) {
	fields := layout.Fields()
	cells := make(map[string]string, len(fields))
	for _, f := range fields {
		cells[f.Key] = f.Cell
	}
	assert.Equal(t, "B5", cells["date"])
	assert.Equal(t, "Q12", cells["driveY"])
	assert.Equal(t, "M21", cells["lowerLamps"])
	assert.Equal(t, "Z5", cells["notes"])

	fields[0].Cell = "A1"
	assert.Equal(t, "B5", layout.Fields()[0].Cell)
}
