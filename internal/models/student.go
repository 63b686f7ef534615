package models

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	MinScore = 0.0
	MaxScore = 100.0
)

type Grade string

const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeFail Grade = "Fail"
)

// GradeOf maps an average onto a letter grade, thresholds checked high to low.
func GradeOf(average float64) Grade {
	switch {
	case average >= 90:
		return GradeA
	case average >= 75:
		return GradeB
	case average >= 50:
		return GradeC
	default:
		return GradeFail
	}
}

func ValidScore(score float64) bool {
	return score >= MinScore && score <= MaxScore
}

// Scores maps subject name to score.
type Scores map[string]float64

// Subjects returns subject names in lexical order.
func (s Scores) Subjects() []string {
	subjects := maps.Keys(s)
	slices.Sort(subjects)
	return subjects
}

// Validate reports the first out of range score, if any.
func (s Scores) Validate() error {
	for _, subject := range s.Subjects() {
		if score := s[subject]; !ValidScore(score) {
			return invalidScore(subject, score)
		}
	}
	return nil
}

func (s Scores) Clone() Scores {
	clone := make(Scores, len(s))
	maps.Copy(clone, s)
	return clone
}

func invalidScore(subject string, score float64) error {
	return errors.Wrapf(ErrInvalidScore, "%s: %v", subject, score)
}

type Student struct {
	ID       string
	Name     string
	Subjects Scores
}

func NewStudent(name string) *Student {
	return NewStudentWithID(uuid.NewString(), name)
}

func NewStudentWithID(ID, name string) *Student {
	return &Student{
		ID:       ID,
		Name:     name,
		Subjects: make(Scores),
	}
}

func (s *Student) AddSubject(subject string, score float64) error {
	if !ValidScore(score) {
		return invalidScore(subject, score)
	}
	if s.Subjects == nil {
		s.Subjects = make(Scores)
	}
	s.Subjects[subject] = score
	return nil
}

func (s *Student) Average() float64 {
	if len(s.Subjects) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, score := range s.Subjects {
		sum += score
	}
	return sum / float64(len(s.Subjects))
}

func (s *Student) Grade() Grade {
	return GradeOf(s.Average())
}
