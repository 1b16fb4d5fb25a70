package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate reports an insert that collided with a primary-key value
// already present in the store.
var ErrDuplicate = errors.New("row already exists")

// uniqueViolation is the PostgreSQL error code for unique-constraint
// violations.
const uniqueViolation = "23505"

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
