package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

// WriteStandings prints the ranked table, or a single line when there is nobody to rank.
func WriteStandings(out io.Writer, standings *scorer.Standings) error {
	if len(standings.Rows) == 0 {
		_, err := fmt.Fprintln(out, "No students.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "#\tID\tName\tSubjects\tAverage\tGrade"); err != nil {
		return err
	}
	for _, row := range standings.Rows {
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\n",
			row.Rank, row.ID, row.Name, row.Subjects, row.Average, row.Grade)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteStudents prints one student per line in collection order.
func WriteStudents(out io.Writer, students []*models.Student) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, student := range students {
		_, err := fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", student.ID, student.Name, student.Average(), student.Grade())
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
