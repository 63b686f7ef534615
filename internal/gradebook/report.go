package gradebook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bigredeye/gradebook/internal/models"
)

type SubjectScore struct {
	Subject string
	Score   float64
}

type Report struct {
	ID       string
	Name     string
	Subjects []SubjectScore
	Average  float64
	Grade    models.Grade
}

func NewReport(student *models.Student) *Report {
	subjects := make([]SubjectScore, 0, len(student.Subjects))
	for _, subject := range student.Subjects.Subjects() {
		subjects = append(subjects, SubjectScore{subject, student.Subjects[subject]})
	}
	return &Report{
		ID:       student.ID,
		Name:     student.Name,
		Subjects: subjects,
		Average:  student.Average(),
		Grade:    student.Grade(),
	}
}

func (r *Report) FormattedAverage() string {
	return strconv.FormatFloat(r.Average, 'f', 2, 64)
}

func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func (r *Report) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Report for %s (ID: %s)\n", r.Name, r.ID)
	for _, s := range r.Subjects {
		fmt.Fprintf(&b, "%s: %s\n", s.Subject, FormatScore(s.Score))
	}
	fmt.Fprintf(&b, "Average: %s\n", r.FormattedAverage())
	fmt.Fprintf(&b, "Grade: %s\n", r.Grade)

	_, err := io.WriteString(w, b.String())
	return err
}
