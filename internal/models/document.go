package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// StudentDocument is the persisted form of a Student. Pointer fields tell
// a missing key apart from an empty value.
type StudentDocument struct {
	ID       *string `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	Subjects Scores  `json:"subjects" validate:"required,dive,gte=0,lte=100"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *Student) Document() StudentDocument {
	id, name := s.ID, s.Name
	return StudentDocument{
		ID:       &id,
		Name:     &name,
		Subjects: s.Subjects.Clone(),
	}
}

func FromDocument(doc StudentDocument) (*Student, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(err)
	}
	return &Student{
		ID:       *doc.ID,
		Name:     *doc.Name,
		Subjects: doc.Subjects.Clone(),
	}, nil
}

func malformed(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(ErrMalformedRecord, err.Error())
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", fe.Field()))
		case "gte", "lte":
			problems = append(problems, fmt.Sprintf("%s is out of range: %v", fe.Field(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.Wrap(ErrMalformedRecord, strings.Join(problems, ", "))
}
