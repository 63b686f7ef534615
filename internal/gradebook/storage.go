package gradebook

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/docker/go-units"
	"github.com/pkg/errors"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

func (m *Manager) SaveToFile(path string) error {
	docs := make([]models.StudentDocument, 0, len(m.students))
	for _, student := range m.students {
		docs = append(docs, student.Document())
	}

	data, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return errors.Wrap(err, "Failed to encode students")
	}
	data = append(data, '\n')

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "Failed to save students to %s", path)
	}

	m.logger.Info("Saved students",
		lf.Path(path),
		lf.NumStudents(len(docs)),
		lf.Size(units.HumanSize(float64(len(data)))),
	)
	return nil
}

// LoadFromFile replaces the collection with the file contents. On any error
// the collection is left as it was.
func (m *Manager) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Info("No saved data", lf.Path(path))
			return errors.Wrapf(ErrNoSavedData, "%s", path)
		}
		return errors.Wrapf(err, "Failed to read %s", path)
	}

	var docs []models.StudentDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return errors.Wrapf(ErrParse, "%s: %s", path, err)
	}
	if docs == nil {
		return errors.Wrapf(ErrParse, "%s: expected a JSON array", path)
	}

	students := make([]*models.Student, 0, len(docs))
	for i, doc := range docs {
		student, err := models.FromDocument(doc)
		if err != nil {
			return errors.Wrapf(err, "%s: record #%d", path, i)
		}
		students = append(students, student)
	}
	m.students = students

	m.logger.Info("Loaded students",
		lf.Path(path),
		lf.NumStudents(len(students)),
		lf.Size(units.HumanSize(float64(len(data)))),
	)
	return nil
}
