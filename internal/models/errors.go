package models

import "github.com/pkg/errors"

var (
	ErrInvalidScore    = errors.New("score must be between 0 and 100")
	ErrMalformedRecord = errors.New("malformed student record")
)
