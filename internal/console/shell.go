package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/gradebook"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

const (
	doneSentinel = "done"

	msgNotFound     = "Student not found."
	msgInvalidScore = "Invalid score. Please enter a number."
)

var errEndOfInput = errors.New("end of input")

// Shell is the interactive menu loop over a Manager.
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	manager  *gradebook.Manager
	dataFile string
	logger   *zap.Logger
}

func NewShell(in io.Reader, out io.Writer, manager *gradebook.Manager, dataFile string, logger *zap.Logger) *Shell {
	return &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		manager:  manager,
		dataFile: dataFile,
		logger:   logger.With(lf.Module("console")),
	}
}

// Run serves menu choices until Exit or end of input, both of which save
// to the data file. Only I/O and save failures on exit are returned.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.prompt("Enter choice: ")
		if err != nil {
			return s.exitOn(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addStudent()
		case "2":
			err = s.updateScores()
		case "3":
			err = s.viewReport()
		case "4":
			err = s.deleteStudent()
		case "5":
			s.save()
		case "6":
			s.load()
		case "7":
			return s.exit()
		case "8":
			err = s.listStudents()
		default:
			s.println("Invalid choice. Try again.")
		}

		if err != nil {
			return s.exitOn(err)
		}
	}
}

func (s *Shell) printMenu() {
	s.println("")
	s.println("===== Student Report Card Manager =====")
	s.println("1. Add Student")
	s.println("2. Update Scores")
	s.println("3. View Report")
	s.println("4. Delete Student")
	s.println("5. Save to File")
	s.println("6. Load from File")
	s.println("7. Exit")
	s.println("8. List Students")
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "Failed to read input")
		}
		if len(line) == 0 {
			return "", errEndOfInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readScores collects subject/score pairs until the done sentinel. A
// non-numeric score is re-prompted for the same subject.
func (s *Shell) readScores(scorePrompt string) (models.Scores, error) {
	scores := make(models.Scores)
	for {
		subject, err := s.prompt("Enter subject (or 'done'): ")
		if err != nil {
			return nil, err
		}
		subject = strings.TrimSpace(subject)
		if strings.EqualFold(subject, doneSentinel) {
			return scores, nil
		}
		if len(subject) == 0 {
			continue
		}

		for {
			raw, err := s.prompt(fmt.Sprintf(scorePrompt, subject))
			if err != nil {
				return nil, err
			}
			score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				s.println(msgInvalidScore)
				continue
			}
			scores[subject] = score
			break
		}
	}
}

func (s *Shell) addStudent() error {
	name, err := s.prompt("Enter student name: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	scores, err := s.readScores("Enter score for %s: ")
	if err != nil {
		return err
	}

	student, err := s.manager.AddStudent(name, scores)
	if err != nil {
		s.printf("Error: %s\n", err)
		return nil
	}
	s.printf("Student '%s' added with ID: %s\n", student.Name, student.ID)
	return nil
}

func (s *Shell) updateScores() error {
	id, err := s.prompt("Enter student ID: ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	if s.manager.FindStudent(id) == nil {
		s.println(msgNotFound)
		return nil
	}

	scores, err := s.readScores("Enter new score for %s: ")
	if err != nil {
		return err
	}

	if err := s.manager.UpdateScores(id, scores); err != nil {
		if errors.Is(err, gradebook.ErrNotFound) {
			s.println(msgNotFound)
		} else {
			s.printf("Error: %s\n", err)
		}
		return nil
	}
	s.println("Scores updated.")
	return nil
}

func (s *Shell) viewReport() error {
	id, err := s.prompt("Enter student ID: ")
	if err != nil {
		return err
	}

	report, err := s.manager.ViewReport(strings.TrimSpace(id))
	if err != nil {
		s.println(msgNotFound)
		return nil
	}
	s.println("")
	return report.Render(s.out)
}

func (s *Shell) deleteStudent() error {
	id, err := s.prompt("Enter student ID: ")
	if err != nil {
		return err
	}

	if err := s.manager.DeleteStudent(strings.TrimSpace(id)); err != nil {
		s.println(msgNotFound)
		return nil
	}
	s.println("Student deleted.")
	return nil
}

func (s *Shell) save() {
	if err := s.manager.SaveToFile(s.dataFile); err != nil {
		s.logger.Error("Failed to save", zap.Error(err))
		s.printf("Error: %s\n", err)
		return
	}
	s.println("Data saved to file.")
}

func (s *Shell) load() {
	err := s.manager.LoadFromFile(s.dataFile)
	switch {
	case err == nil:
		s.println("Data loaded from file.")
	case errors.Is(err, gradebook.ErrNoSavedData):
		s.println("No saved data found.")
	default:
		s.logger.Error("Failed to load", zap.Error(err))
		s.printf("Error: %s\n", err)
	}
}

func (s *Shell) listStudents() error {
	return WriteStandings(s.out, scorer.CalcStandings(s.manager.Students()))
}

func (s *Shell) exit() error {
	if err := s.manager.SaveToFile(s.dataFile); err != nil {
		return errors.Wrap(err, "Failed to save on exit")
	}
	s.println("Exiting... Data saved.")
	return nil
}

// exitOn saves before giving up on input, whatever stopped it.
func (s *Shell) exitOn(err error) error {
	s.println("")
	if errors.Is(err, errEndOfInput) {
		return s.exit()
	}
	if saveErr := s.exit(); saveErr != nil {
		s.logger.Error("Failed to save after input error", zap.Error(saveErr))
	}
	return err
}
