package gradebook

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"

	exportSheet = "Grades"
)

func ParseExportFormat(format string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(format)) {
	case ExportCSV:
		return ExportCSV, nil
	case ExportXLSX:
		return ExportXLSX, nil
	default:
		return "", errors.Errorf("Unknown export format %q", format)
	}
}

func (m *Manager) Export(w io.Writer, format ExportFormat) error {
	var err error
	switch format {
	case ExportCSV:
		err = m.exportCSV(w)
	case ExportXLSX:
		err = m.exportXLSX(w)
	default:
		err = errors.Errorf("Unknown export format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "Failed to export students")
	}

	m.logger.Info("Exported students",
		lf.Format(string(format)),
		lf.NumStudents(len(m.students)),
	)
	return nil
}

// csvRow is one (student, subject) pair. Students without subjects get a
// single row with empty subject and score.
type csvRow struct {
	ID      string `csv:"id"`
	Name    string `csv:"name"`
	Subject string `csv:"subject"`
	Score   string `csv:"score"`
	Average string `csv:"average"`
	Grade   string `csv:"grade"`
}

func (m *Manager) exportCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	enc := csvutil.NewEncoder(writer)

	if len(m.students) == 0 {
		if err := enc.EncodeHeader(csvRow{}); err != nil {
			return err
		}
	}

	for _, student := range m.students {
		report := NewReport(student)
		row := csvRow{
			ID:      report.ID,
			Name:    report.Name,
			Average: report.FormattedAverage(),
			Grade:   string(report.Grade),
		}
		if len(report.Subjects) == 0 {
			if err := enc.Encode(row); err != nil {
				return err
			}
			continue
		}
		for _, s := range report.Subjects {
			row.Subject = s.Subject
			row.Score = FormatScore(s.Score)
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// allSubjects returns the union of subjects over every student, sorted.
func (m *Manager) allSubjects() []string {
	set := make(map[string]struct{})
	for _, student := range m.students {
		for subject := range student.Subjects {
			set[subject] = struct{}{}
		}
	}
	subjects := maps.Keys(set)
	slices.Sort(subjects)
	return subjects
}

func (m *Manager) exportXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}

	subjects := m.allSubjects()
	header := []interface{}{"ID", "Name", "Average", "Grade"}
	for _, subject := range subjects {
		header = append(header, subject)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, student := range m.students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, studentRow(student, subjects)); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func studentRow(student *models.Student, subjects []string) *[]interface{} {
	report := NewReport(student)
	row := []interface{}{report.ID, report.Name, report.FormattedAverage(), string(report.Grade)}
	for _, subject := range subjects {
		if score, ok := student.Subjects[subject]; ok {
			row = append(row, score)
		} else {
			row = append(row, nil)
		}
	}
	return &row
}
