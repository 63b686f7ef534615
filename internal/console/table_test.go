package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

var errClosed = errors.New("closed")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errClosed
}

func TestTablesReportWriteErrors(t *testing.T) {
	alice := &models.Student{ID: "id-1", Name: "Alice", Subjects: models.Scores{"Math": 95}}

	for name, write := range map[string]func() error{
		"empty standings": func() error { return WriteStandings(failingWriter{}, scorer.CalcStandings(nil)) },
		"standings": func() error {
			return WriteStandings(failingWriter{}, scorer.CalcStandings([]*models.Student{alice}))
		},
		"students": func() error { return WriteStudents(failingWriter{}, []*models.Student{alice}) },
	} {
		if err := write(); !errors.Is(err, errClosed) {
			t.Fatalf("%s: expected write error, got %v", name, err)
		}
	}
}

func TestWriteStandingsEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := WriteStandings(&out, scorer.CalcStandings(nil)); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}
	if out.String() != "No students.\n" {
		t.Fatalf("Unexpected output: %q", out.String())
	}
}
