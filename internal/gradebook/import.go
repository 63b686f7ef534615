package gradebook

import (
	"github.com/pkg/errors"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/roster"
)

// Import adds every roster entry as a new student. Nothing is added unless
// the whole roster is valid.
func (m *Manager) Import(r roster.Roster) ([]*models.Student, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.Wrap(err, "Failed to import roster")
	}

	added := make([]*models.Student, 0, len(r))
	for _, entry := range r {
		student, err := m.AddStudent(entry.Name, entry.Subjects)
		if err != nil {
			return added, err
		}
		added = append(added, student)
	}

	m.logger.Info("Imported roster", lf.NumStudents(len(added)))
	return added, nil
}
