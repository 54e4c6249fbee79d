// Package export writes spreadsheets from data already loaded by the client.
package export

import (
	"academy/backend/models"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrNoRows is returned instead of producing an empty workbook.
var ErrNoRows = errors.New("no registrations to export")

const sheetName = "Registrations"

var Columns = []string{
	"Name", "Email", "Phone", "Country", "Course", "Experience", "Goals",
	"Newsletter", "Agreed to Terms", "Status", "Registration Date",
}

// Row is one spreadsheet line. courseTitles maps course ids to titles; unknown
// ids are written as-is.
func Row(r models.Registration, courseTitles map[string]string) []string {
	course := r.CourseID
	if title, ok := courseTitles[r.CourseID]; ok && title != "" {
		course = title
	}
	return []string{
		r.FirstName + " " + r.LastName,
		r.Email,
		r.Phone,
		r.Country,
		course,
		r.ExperienceLevel,
		r.Goals,
		yesNo(r.Newsletter),
		yesNo(r.AgreeTerms),
		r.Status,
		r.RegistrationDate.Format(time.DateTime),
	}
}

// Registrations builds the workbook for regs.
func Registrations(regs []models.Registration, courseTitles map[string]string) (*excelize.File, error) {
	if len(regs) == 0 {
		return nil, ErrNoRows
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range regs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := Row(r, courseTitles)
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f, nil
}

// WriteRegistrations streams the workbook for regs to w.
func WriteRegistrations(w io.Writer, regs []models.Registration, courseTitles map[string]string) error {
	f, err := Registrations(regs, courseTitles)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// FileName is the default download name for an export made at now.
func FileName(now time.Time) string {
	return "registrations-" + now.Format(time.DateOnly) + ".xlsx"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
