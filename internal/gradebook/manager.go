package gradebook

import (
	"github.com/alexsergivan/transliterator"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

// Manager owns the ordered student collection. It is not safe for
// concurrent use; the caller serializes requests.
type Manager struct {
	students []*models.Student

	logger   *zap.Logger
	newID    func() string
	translit *transliterator.Transliterator
}

type Option interface {
	apply(m *Manager)
}

type idGenerator struct {
	generate func() string
}

func (g *idGenerator) apply(m *Manager) {
	m.newID = g.generate
}

func WithIDGenerator(generate func() string) Option {
	return &idGenerator{generate}
}

func NewManager(logger *zap.Logger, options ...Option) *Manager {
	m := &Manager{
		students: make([]*models.Student, 0),
		logger:   logger.With(lf.Module("gradebook")),
		newID:    uuid.NewString,
		translit: transliterator.NewTransliterator(nil),
	}
	for _, option := range options {
		option.apply(m)
	}
	return m
}

func (m *Manager) Len() int {
	return len(m.students)
}

// Students returns the collection in insertion order. The slice is a copy,
// the records are shared.
func (m *Manager) Students() []*models.Student {
	students := make([]*models.Student, len(m.students))
	copy(students, m.students)
	return students
}

func (m *Manager) AddStudent(name string, scores models.Scores) (*models.Student, error) {
	if err := scores.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Failed to add student %q", name)
	}

	student := models.NewStudentWithID(m.newID(), name)
	if err := applyScores(student, scores); err != nil {
		return nil, errors.Wrapf(err, "Failed to add student %q", name)
	}
	m.students = append(m.students, student)

	m.logger.Info("Added student",
		lf.StudentID(student.ID),
		lf.StudentName(student.Name),
		lf.NumSubjects(len(student.Subjects)),
	)
	return student, nil
}

func (m *Manager) FindStudent(id string) *models.Student {
	if i := m.indexOf(id); i >= 0 {
		return m.students[i]
	}
	return nil
}

func (m *Manager) indexOf(id string) int {
	for i, student := range m.students {
		if student.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) UpdateScores(id string, scores models.Scores) error {
	student := m.FindStudent(id)
	if student == nil {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}
	if err := scores.Validate(); err != nil {
		return errors.Wrapf(err, "Failed to update student %s", id)
	}
	if err := applyScores(student, scores); err != nil {
		return errors.Wrapf(err, "Failed to update student %s", id)
	}

	m.logger.Info("Updated scores",
		lf.StudentID(id),
		lf.NumSubjects(len(scores)),
	)
	return nil
}

// applyScores expects a batch that already passed Scores.Validate.
func applyScores(student *models.Student, scores models.Scores) error {
	for _, subject := range scores.Subjects() {
		if err := student.AddSubject(subject, scores[subject]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) ViewReport(id string) (*Report, error) {
	student := m.FindStudent(id)
	if student == nil {
		return nil, errors.Wrapf(ErrNotFound, "%s", id)
	}
	return NewReport(student), nil
}

func (m *Manager) DeleteStudent(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}

	m.students = append(m.students[:i:i], m.students[i+1:]...)

	m.logger.Info("Deleted student", lf.StudentID(id))
	return nil
}
