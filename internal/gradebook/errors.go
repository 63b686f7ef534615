package gradebook

import "github.com/pkg/errors"

var (
	ErrNotFound    = errors.New("student not found")
	ErrNoSavedData = errors.New("no saved data found")
	ErrParse       = errors.New("failed to parse saved data")
)
