package gradebook

import (
	"strings"

	"github.com/bigredeye/gradebook/internal/models"
)

// SearchByName matches query as a case-insensitive substring of student
// names. Both sides are transliterated to latin first.
func (m *Manager) SearchByName(query string) []*models.Student {
	needle := m.normalizeName(query)

	found := make([]*models.Student, 0)
	for _, student := range m.students {
		if strings.Contains(m.normalizeName(student.Name), needle) {
			found = append(found, student)
		}
	}
	return found
}

func (m *Manager) normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(m.translit.Transliterate(name, "en")))
}
