package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"dorm-management-api/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Applications"

var exportHeader = []string{
	"Name", "Student ID", "Gender", "Sponsorship", "Residency", "City", "Subcity", "Woreda",
	"Status", "Submitted", "Last Response", "Building", "Transaction ID",
}

// ExportService writes the staff application table as CSV or XLSX. It takes
// the already filtered and sorted list.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// exportRow renders one application. Missing values become "-".
func exportRow(app *models.DormApplication) []string {
	s := app.Student
	if s == nil {
		s = &models.Student{}
	}
	return []string{
		s.DisplayName,
		s.StudentID,
		orDash(string(s.Gender)),
		orDash(string(s.SponsorshipType)),
		orDash(string(s.Residency)),
		orDash(models.StringValue(s.City)),
		orDash(models.StringValue(s.Subcity)),
		orDash(models.StringValue(s.Woreda)),
		app.Status.String(),
		orDash(app.SubmittedDateString()),
		orDash(app.LatestResponse()),
		orDash(s.Building()),
		orDash(models.StringValue(s.TransactionID)),
	}
}

// WriteCSV writes the header and one row per application.
func (e *ExportService) WriteCSV(w io.Writer, apps []*models.DormApplication) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, app := range apps {
		if err := cw.Write(exportRow(app)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// BuildXLSX lays the same columns out on the Applications sheet.
func (e *ExportService) BuildXLSX(apps []*models.DormApplication) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, title := range exportHeader {
		f.SetCellValue(exportSheet, cellName(i, 1), title)
	}
	f.SetCellStyle(exportSheet, cellName(0, 1), cellName(len(exportHeader)-1, 1), headerStyle)
	f.SetColWidth(exportSheet, "A", colName(len(exportHeader)-1), 16)

	for r, app := range apps {
		for c, value := range exportRow(app) {
			f.SetCellValue(exportSheet, cellName(c, r+2), value)
		}
	}
	return f, nil
}

// WriteXLSX streams the workbook to w.
func (e *ExportService) WriteXLSX(w io.Writer, apps []*models.DormApplication) error {
	f, err := e.BuildXLSX(apps)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}
