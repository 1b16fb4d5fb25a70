package service

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when the scraper hands over zero records, leaving
// no profile document to extract.
var ErrEmptyBatch = errors.New("empty record batch")

// MissingFieldError reports a source document lacking a field the persisted
// schema requires.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
