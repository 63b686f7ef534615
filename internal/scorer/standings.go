package scorer

import (
	"sort"

	"github.com/bigredeye/gradebook/internal/models"
)

type StandingsRow struct {
	Rank     int
	ID       string
	Name     string
	Subjects int
	Average  float64
	Grade    models.Grade
}

type Standings struct {
	Rows []StandingsRow
}

// CalcStandings ranks students by average, best first. Equal averages share
// a rank and the next rank is skipped (1, 1, 3).
func CalcStandings(students []*models.Student) *Standings {
	rows := make([]StandingsRow, len(students))
	for i, student := range students {
		rows[i] = StandingsRow{
			ID:       student.ID,
			Name:     student.Name,
			Subjects: len(student.Subjects),
			Average:  student.Average(),
			Grade:    student.Grade(),
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Average != rows[j].Average {
			return rows[i].Average > rows[j].Average
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})

	for i := range rows {
		if i > 0 && rows[i].Average == rows[i-1].Average {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}

	return &Standings{rows}
}
