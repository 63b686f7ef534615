package roster

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/gradebook/internal/models"
)

// Entry is a student to be created, without an ID.
type Entry struct {
	Name     string        `yaml:"name"`
	Subjects models.Scores `yaml:"subjects"`
}

type Roster []Entry

func Parse(body []byte) (Roster, error) {
	roster := Roster{}
	if err := yaml.UnmarshalStrict(body, &roster); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal roster")
	}
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	return roster, nil
}

func Load(path string) (Roster, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read roster")
	}
	return Parse(body)
}

func (r Roster) Validate() error {
	for i, entry := range r {
		if len(strings.TrimSpace(entry.Name)) == 0 {
			return errors.Errorf("Roster entry #%d has no name", i)
		}
		if err := entry.Subjects.Validate(); err != nil {
			return errors.Wrapf(err, "Roster entry #%d (%s)", i, entry.Name)
		}
	}
	return nil
}
