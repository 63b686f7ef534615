package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/gradebook"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

var addedID = regexp.MustCompile(`added with ID: (\S+)`)

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "grades.json")

	out, err := execute(t, "--data", data, "add", "--name", "Alice", "--score", "Math=95", "--score", "Science=85")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	match := addedID.FindStringSubmatch(out)
	if match == nil {
		t.Fatalf("No ID in output: %s", out)
	}
	id := match[1]

	out, err = execute(t, "--data", data, "report", id)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out, "Average: 90.00\nGrade: A") {
		t.Fatalf("Unexpected report: %s", out)
	}

	if _, err = execute(t, "--data", data, "update", id, "--score", "Science=40"); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, err = execute(t, "--data", data, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "67.50") || !strings.Contains(out, "Alice") {
		t.Fatalf("Unexpected list: %s", out)
	}

	out, err = execute(t, "--data", data, "search", "ali")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, id) {
		t.Fatalf("Unexpected search result: %s", out)
	}

	export := filepath.Join(dir, "grades.csv")
	if _, err = execute(t, "--data", data, "export", "--format", "csv", "--output", export); err != nil {
		t.Fatalf("export: %v", err)
	}
	csv, err := os.ReadFile(export)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(csv), id+",Alice,Science,40,67.50,C") {
		t.Fatalf("Unexpected export: %s", csv)
	}

	if _, err = execute(t, "--data", data, "delete", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err = execute(t, "--data", data, "report", id); !errors.Is(err, gradebook.ErrNotFound) {
		t.Fatalf("report after delete = %v, expected ErrNotFound", err)
	}
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "grades.json")
	rosterPath := filepath.Join(dir, "roster.yaml")
	if err := os.WriteFile(rosterPath, []byte("- name: Bob\n  subjects:\n    Art: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--data", data, "import", rosterPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Student 'Bob' added with ID: ") {
		t.Fatalf("Unexpected output: %s", out)
	}

	manager := gradebook.NewManager(log)
	if err := manager.LoadFromFile(data); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if manager.Len() != 1 {
		t.Fatalf("Expected one student, got %d", manager.Len())
	}
}

func TestCorruptDataIsFatal(t *testing.T) {
	data := filepath.Join(t.TempDir(), "grades.json")
	if err := os.WriteFile(data, []byte("[{]"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--data", data, "shell"); !errors.Is(err, gradebook.ErrParse) {
		t.Fatalf("shell = %v, expected ErrParse", err)
	}
}
