package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	curveSheet   = "Curve"
)

// buildReportWorkbook renders one stored case as an xlsx workbook: a summary
// sheet with the headline numbers and findings, plus a curve sheet feeding a
// scatter chart with the duty point marked.
func buildReportWorkbook(detail *CaseDetail) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(curveSheet); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, detail); err != nil {
		return nil, err
	}
	points, err := writeCurveSheet(f, detail)
	if err != nil {
		return nil, err
	}
	if points > 0 {
		if err := addCurveChart(f, points); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, detail *CaseDetail) error {
	var err error
	set := func(cell string, value any) {
		if err == nil {
			err = f.SetCellValue(summarySheet, cell, value)
		}
	}

	res := &detail.Result
	lines := []struct {
		label string
		value any
	}{
		{"Case", detail.CaseID},
		{"Project", detail.ProjectName},
		{"Created", detail.CreatedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Design flow (m³/s)", res.DesignFlow},
		{"Design flow (m³/h)", res.DesignFlow * 3600},
		{"Total manometric head (m)", res.Hmt},
		{"Static head (m)", res.StaticHead},
		{"Pressure head (m)", res.PressureHead},
		{"Nozzle velocity head (m)", res.VelocityHead},
		{"Suction friction loss (m)", res.Suction.TotalLoss()},
		{"Discharge friction loss (m)", res.Discharge.TotalLoss()},
		{},
		{"NPSH available (m)", res.Npsh.Available},
		{"NPSH required (m)", res.Npsh.Required},
		{"NPSH margin (m)", res.Npsh.Margin},
		{"Cavitation risk", riskLabel(res.Npsh.CavitationRisk)},
		{},
		{"Hydraulic power (W)", res.HydraulicPower},
		{"Pump differential pressure (bar)", res.PressureBar},
		{},
		{"Suction velocity (m/s)", res.Suction.Velocity},
		{"Suction Reynolds", res.Suction.Reynolds},
		{"Suction friction factor", res.Suction.FrictionFactor},
		{"Discharge velocity (m/s)", res.Discharge.Velocity},
		{"Discharge Reynolds", res.Discharge.Reynolds},
		{"Discharge friction factor", res.Discharge.FrictionFactor},
	}

	set("A1", "Pump sizing report")
	row := 3
	for _, line := range lines {
		if line.label != "" {
			set(fmt.Sprintf("A%d", row), line.label)
			set(fmt.Sprintf("B%d", row), line.value)
		}
		row++
	}

	row++
	set(fmt.Sprintf("A%d", row), "Findings")
	row++
	if len(res.VelocityWarnings) == 0 && len(res.Advisories) == 0 {
		set(fmt.Sprintf("A%d", row), "none")
		row++
	}
	for _, w := range res.VelocityWarnings {
		set(fmt.Sprintf("A%d", row), fmt.Sprintf("%s %s", w.Leg, w.Kind))
		set(fmt.Sprintf("B%d", row), w.Message)
		row++
	}
	for _, a := range res.Advisories {
		set(fmt.Sprintf("A%d", row), fmt.Sprintf("%s %s", a.Category, a.Severity))
		set(fmt.Sprintf("B%d", row), a.Message)
		row++
	}

	row++
	set(fmt.Sprintf("A%d", row), "Recommendations")
	row++
	for _, rec := range res.Recommendations {
		set(fmt.Sprintf("A%d", row), rec)
		row++
	}
	if err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 32); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 48)
}

func writeCurveSheet(f *excelize.File, detail *CaseDetail) (int, error) {
	var err error
	set := func(cell string, value any) {
		if err == nil {
			err = f.SetCellValue(curveSheet, cell, value)
		}
	}

	set("A1", "Flow (m³/s)")
	set("B1", "Head (m)")
	for i, p := range detail.Result.SystemCurve {
		set(fmt.Sprintf("A%d", i+2), p.Flow)
		set(fmt.Sprintf("B%d", i+2), p.Head)
	}
	set("D1", "Duty flow (m³/s)")
	set("E1", "Duty head (m)")
	set("D2", detail.Result.DesignFlow)
	set("E2", detail.Result.Hmt)
	return len(detail.Result.SystemCurve), err
}

// addCurveChart draws the system curve with the duty point as a lone marker,
// the way a selection sheet is read: where does the pump have to land.
func addCurveChart(f *excelize.File, points int) error {
	last := points + 1
	return f.AddChart(curveSheet, "G2", &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{
			{
				Name:       "System curve",
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", curveSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", curveSheet, last),
				Marker:     excelize.ChartMarker{Symbol: "none"},
			},
			{
				Name:       "Duty point",
				Categories: fmt.Sprintf("%s!$D$2", curveSheet),
				Values:     fmt.Sprintf("%s!$E$2", curveSheet),
				Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
				Marker:     excelize.ChartMarker{Symbol: "circle", Size: 7},
			},
		},
		Title:     []excelize.RichTextRun{{Text: "System curve"}},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Flow (m³/s)"}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Head (m)"}}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 640, Height: 360},
	})
}

func riskLabel(risk bool) string {
	if risk {
		return "yes"
	}
	return "no"
}
