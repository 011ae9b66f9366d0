// Package layout describes where the monitoring checklist lives in the work history template.
package layout

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Kind of value written to a cell.
type Kind int

const (
	// Text is written as is.
	Text Kind = iota
	// Number is written as float.
	Number
	// Integer is written as int.
	Integer
	// Date keeps only the date part of "date time" text.
	Date
)

const (
	UpdatedLabelCell = "E2"
	UpdatedLabel     = "最終更新日時"
	UpdatedAtCell    = "Z2"
	TimestampLayout  = "2006-01-02 15:04:05"

	ResultKey  = "checkResult"
	ResultCell = "D5"

	FindingsCell    = "E5"
	DefaultFindings = "FTサーバユーティリティ確認"
	FindingsSep     = "; "

	VerdictOK        = "問題なし"
	VerdictAttention = "要確認"

	ModuleKey       = "cpuPciModule"
	EnclosureKey    = "scsiEnclosure"
	ErrorStatus     = "Error"
	FindingFTServer = "FTサーバーエラー"

	CPUUsageKey      = "cpuUsage"
	findingCPULayout = "CPU高負荷(%s%%)"
)

// Units is number of SC machines in template.
const Units = 12

// columns are 1-based, E is 5.
const (
	driveFirstRow  = 24
	driveLabelCol  = 5
	driveCCol      = 8
	driveDCol      = 13
	driveHCol      = 18
	oddLabelCol    = 5
	oddCPUCol      = 7
	oddMemoryCol   = 11
	evenLabelCol   = 15
	evenCPUCol     = 17
	evenMemoryCol  = 21
	unitKeyLayout  = "sc%d_%s"
	unitLabel      = "SC-%d"
	unitMetricMark = ":"
)

// CPU/memory section header search area.
const (
	SectionLabel    = "CPU[%]/メモリ[GB]"
	SectionColumn   = 5
	SectionFirstRow = 35
	SectionLastRow  = 49
)

// unit metrics.
const (
	DriveC = "c"
	DriveD = "d"
	DriveH = "h"
	CPU    = "cpu"
	Memory = "memory"
)

// Field maps payload key to fixed cell.
type Field struct {
	Key   string
	Cell  string
	Label string
	Kind  Kind
}

var fields = []Field{
	{Key: "date", Cell: "B5", Label: "確認日", Kind: Date},
	{Key: "checker", Cell: "C5", Label: "確認者", Kind: Text},
	{Key: "cpuPciModule", Cell: "P6", Label: "CPU/PCIモジュール", Kind: Text},
	{Key: "scsiEnclosure", Cell: "P7", Label: "SCSIエンクロージャ", Kind: Text},
	{Key: "driveC", Cell: "G11", Label: "Cドライブ", Kind: Number},
	{Key: "driveD", Cell: "Q11", Label: "Dドライブ", Kind: Number},
	{Key: "driveE", Cell: "G12", Label: "Eドライブ", Kind: Number},
	{Key: "driveY", Cell: "Q12", Label: "Yドライブ", Kind: Number},
	{Key: "driveZ", Cell: "G13", Label: "Zドライブ", Kind: Number},
	{Key: "sqlServerMemory", Cell: "P15", Label: "SQLServerメモリ", Kind: Number},
	{Key: "totalMemory", Cell: "P16", Label: "全体メモリ使用量", Kind: Number},
	{Key: "cpuUsage", Cell: "J18", Label: "CPU使用率", Kind: Number},
	{Key: "cpuUsageTime", Cell: "P18", Label: "CPU確認時刻", Kind: Text},
	{Key: "serverTimeSync", Cell: "J9", Label: "サーバ時刻同期", Kind: Text},
	{Key: "memoryUsageStatus", Cell: "J17", Label: "メモリ使用量状況", Kind: Text},
	{Key: "upperLamps", Cell: "M20", Label: "上段サーバランプ", Kind: Integer},
	{Key: "lowerLamps", Cell: "M21", Label: "下段サーバランプ", Kind: Integer},
	{Key: "notes", Cell: "Z5", Label: "備考", Kind: Text},
}

// Fields returns fixed field table in write order.
func Fields() []Field {
	result := make([]Field, len(fields))
	copy(result, fields)
	return result
}

// DriveBlock cells of one SC machine in HDD section.
type DriveBlock struct {
	Label string
	C     string
	D     string
	H     string
}

// MetricBlock cells of one SC machine in CPU/memory section.
type MetricBlock struct {
	Label  string
	CPU    string
	Memory string
}

// UnitKey returns payload key of unit metric.
func UnitKey(unit int, metric string) string {
	return fmt.Sprintf(unitKeyLayout, unit, metric)
}

// UnitLabel returns "SC-n".
func UnitLabel(unit int) string {
	return fmt.Sprintf(unitLabel, unit)
}

// UnitMetricLabel returns "SC-n:".
func UnitMetricLabel(unit int) string {
	return UnitLabel(unit) + unitMetricMark
}

// Drives returns HDD cells of unit, SC-1 at row 24.
func Drives(unit int) DriveBlock {
	row := driveFirstRow + unit - 1
	return DriveBlock{
		Label: cell(driveLabelCol, row),
		C:     cell(driveCCol, row),
		D:     cell(driveDCol, row),
		H:     cell(driveHCol, row),
	}
}

// Metrics returns CPU/memory cells of unit below section header row.
// Odd units fill left half, even units right half, two units per row.
func Metrics(headerRow, unit int) MetricBlock {
	if unit%2 == 1 {
		row := headerRow + 1 + (unit-1)/2
		return MetricBlock{
			Label:  cell(oddLabelCol, row),
			CPU:    cell(oddCPUCol, row),
			Memory: cell(oddMemoryCol, row),
		}
	}
	row := headerRow + 1 + (unit-2)/2
	return MetricBlock{
		Label:  cell(evenLabelCol, row),
		CPU:    cell(evenCPUCol, row),
		Memory: cell(evenMemoryCol, row),
	}
}

// FindingCPU returns finding text of high cpu usage.
func FindingCPU(usage string) string {
	return fmt.Sprintf(findingCPULayout, usage)
}

func cell(col, row int) string {
	axis, _ := excelize.CoordinatesToCellName(col, row)
	return axis
}
