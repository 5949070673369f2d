package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/artem13815/talent/pkg/errs"
)

// Dataset names match the analytics endpoints.
const (
	DatasetAll                   = "all"
	DatasetDashboard             = "dashboard"
	DatasetTimeToHire            = "time-to-hire"
	DatasetCandidateSources      = "candidate-sources"
	DatasetDepartmentPerformance = "department-performance"
	DatasetConversionFunnel      = "conversion-funnel"
	DatasetInsights              = "ai-insights"
)

var datasets = []string{
	DatasetDashboard, DatasetTimeToHire, DatasetCandidateSources,
	DatasetDepartmentPerformance, DatasetConversionFunnel, DatasetInsights,
}

var (
	ErrInvalidExportType = errs.Validation("Invalid export type")
	ErrInvalidTimeRange  = errs.Validation("Invalid timeRange")
)

// ExportRequest selects what goes into the workbook. TimeRange is a number
// of days ("30" or "30d"); empty means all time.
type ExportRequest struct {
	Type      string `json:"type"`
	TimeRange string `json:"timeRange"`

	days int
}

func (r *ExportRequest) normalize() error {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	if r.Type == "" {
		r.Type = DatasetAll
	}
	if r.Type != DatasetAll && !contains(datasets, r.Type) {
		return ErrInvalidExportType
	}
	tr := strings.TrimSuffix(strings.TrimSpace(r.TimeRange), "d")
	if tr == "" {
		return nil
	}
	n, err := strconv.Atoi(tr)
	if err != nil || n < 0 {
		return ErrInvalidTimeRange
	}
	r.days = n
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Export is a generated XLSX workbook.
type Export struct {
	Filename string
	Data     []byte
}

// ContentType is the MIME type of an XLSX workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var sheetTitles = map[string]string{
	DatasetDashboard:             "Dashboard",
	DatasetTimeToHire:            "Time to Hire",
	DatasetCandidateSources:      "Candidate Sources",
	DatasetDepartmentPerformance: "Departments",
	DatasetConversionFunnel:      "Conversion Funnel",
	DatasetInsights:              "Insights",
}

// Workbook renders the requested datasets, one sheet each.
func (s Snapshot) Workbook(req ExportRequest, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	selected := datasets
	if req.Type != DatasetAll {
		selected = []string{req.Type}
	}
	for i, name := range selected {
		title := sheetTitles[name]
		if i == 0 {
			if err := f.SetSheetName("Sheet1", title); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(title); err != nil {
			return nil, err
		}
		if err := writeRows(f, title, header, s.rows(name, req.days, now)); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", title, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rows returns the header row followed by data rows.
func (s Snapshot) rows(name string, days int, now time.Time) [][]any {
	switch name {
	case DatasetDashboard:
		d := s.Dashboard()
		rows := [][]any{
			{"Metric", "Value"},
			{"Open positions", d.OpenPositions},
			{"Active candidates", d.ActiveCandidates},
			{"Interviews scheduled", d.InterviewsScheduled},
			{"Offers extended", d.OffersExtended},
			{"New hires", d.NewHires},
			{"Average time to hire (days)", d.TimeToHire},
		}
		for _, src := range sources {
			rows = append(rows, []any{"Source: " + sourceNames[src], d.CandidateSourceBreakdown[string(src)]})
		}
		return rows
	case DatasetTimeToHire:
		rows := [][]any{{"Department", "Average days", "Hires"}}
		for _, t := range s.TimeToHire(days, now) {
			rows = append(rows, []any{t.Department, t.AverageDays, t.Hires})
		}
		return rows
	case DatasetCandidateSources:
		rows := [][]any{{"Source", "Candidates", "Percentage"}}
		for _, sh := range s.CandidateSources() {
			rows = append(rows, []any{sh.Name, sh.Count, sh.Percentage})
		}
		return rows
	case DatasetDepartmentPerformance:
		rows := [][]any{{"Department", "Open jobs", "Total jobs", "Candidates", "Hires", "Average salary"}}
		for _, p := range s.DepartmentPerformance() {
			rows = append(rows, []any{p.Department, p.OpenJobs, p.TotalJobs, p.Candidates, p.Hires, p.AverageSalary})
		}
		return rows
	case DatasetConversionFunnel:
		rows := [][]any{{"Stage", "Count", "Percentage"}}
		for _, st := range s.ConversionFunnel() {
			rows = append(rows, []any{st.Stage, st.Count, st.Percentage})
		}
		return rows
	default:
		rows := [][]any{{"Type", "Title", "Impact", "Metric", "Description"}}
		for _, in := range s.Insights() {
			rows = append(rows, []any{in.Type, in.Title, string(in.Impact), in.Metric, in.Description})
		}
		return rows
	}
}

func writeRows(f *excelize.File, sheet string, headerStyle int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}
