package gradebook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")

	m := newTestManager()
	mustAdd(t, m, "Alice", models.Scores{"Math": 95, "Science": 85})
	mustAdd(t, m, "Bob", models.Scores{})
	mustAdd(t, m, "Carol", models.Scores{"Art": 72.25})

	if err := m.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	restored := NewManager(zap.NewNop())
	if err := restored.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if diff := cmp.Diff(m.Students(), restored.Students()); diff != "" {
		t.Fatalf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")

	m := newTestManager()
	mustAdd(t, m, "Alice", models.Scores{"Math": 95})
	if err := m.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := `[
    {
        "id": "id-1",
        "name": "Alice",
        "subjects": {
            "Math": 95
        }
    }
]
`
	if diff := cmp.Diff(expected, string(data)); diff != "" {
		t.Fatalf("File mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplacesContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grades.json")
	if err := os.WriteFile(path, []byte("a much longer stale payload that must disappear entirely"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestManager()
	if err := m.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Fatalf("Unexpected contents: %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Temporary files left behind: %d entries", len(entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := newTestManager()
	mustAdd(t, m, "Alice", models.Scores{"Math": 95})
	before := m.Students()

	err := m.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNoSavedData) {
		t.Fatalf("LoadFromFile = %v, expected ErrNoSavedData", err)
	}
	if diff := cmp.Diff(before, m.Students()); diff != "" {
		t.Fatalf("Collection changed (-want +got):\n%s", diff)
	}
}

func TestLoadIsNotAdditive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")

	saved := newTestManager()
	mustAdd(t, saved, "Alice", nil)
	if err := saved.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	m := NewManager(zap.NewNop())
	mustAdd(t, m, "Bob", nil)
	mustAdd(t, m, "Carol", nil)
	if err := m.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if m.Len() != 1 || m.FindStudent("id-1") == nil {
		t.Fatalf("Load must replace the collection: %+v", m.Students())
	}
}

func TestLoadKeepsIDsVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")
	payload := `[{"id": "legacy-42", "name": "Dave", "subjects": {"Math": 50}}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestManager()
	if err := m.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	student := m.FindStudent("legacy-42")
	if student == nil {
		t.Fatal("Loaded ID was regenerated")
	}
	if student.Grade() != models.GradeC {
		t.Fatalf("Invalid grade: %v", student.Grade())
	}
}

func TestLoadCorruptData(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		kind    error
	}{
		{"not json", `[{"id": `, ErrParse},
		{"null", `null`, ErrParse},
		{"not an array", `{"id": "a", "name": "b", "subjects": {}}`, ErrParse},
		{"string score", `[{"id": "a", "name": "b", "subjects": {"Math": "A+"}}]`, ErrParse},
		{"missing id", `[{"name": "b", "subjects": {}}]`, models.ErrMalformedRecord},
		{"missing subjects", `[{"id": "a", "name": "b"}]`, models.ErrMalformedRecord},
		{"null entry", `[null]`, models.ErrMalformedRecord},
		{"score out of range", `[{"id": "a", "name": "b", "subjects": {"Math": 140}}]`, models.ErrMalformedRecord},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "grades.json")
			if err := os.WriteFile(path, []byte(c.payload), 0o644); err != nil {
				t.Fatal(err)
			}

			m := newTestManager()
			mustAdd(t, m, "Alice", nil)

			err := m.LoadFromFile(path)
			if !errors.Is(err, c.kind) {
				t.Fatalf("LoadFromFile = %v, expected %v", err, c.kind)
			}
			if m.Len() != 1 || m.FindStudent("id-1") == nil {
				t.Fatal("Failed load changed the collection")
			}
		})
	}
}

func TestLoadEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestManager()
	mustAdd(t, m, "Alice", nil)
	if err := m.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("Expected an empty collection, got %d", m.Len())
	}
}

func TestSavedDocumentsAreValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")
	m := newTestManager()
	mustAdd(t, m, "Zoë \"Z\" O'Neil", models.Scores{"Литература": 88})
	if err := m.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var docs []map[string]interface{}
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("Saved file is not valid JSON: %v", err)
	}
	if len(docs) != 1 || docs[0]["name"] != "Zoë \"Z\" O'Neil" {
		t.Fatalf("Unexpected documents: %+v", docs)
	}
}
