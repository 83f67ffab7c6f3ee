// Package repository is the persistence layer for venues, artists, shows and
// genres. Every repository receives its *gorm.DB explicitly and reports
// failures as one of the sentinel kinds below, wrapped together with the
// underlying cause so both remain reachable through errors.Is.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: the requested id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a foreign key or uniqueness rule rejected the write,
	// e.g. a show referencing a missing venue or artist.
	ErrConflict = errors.New("conflict")
	// ErrValidation is reserved; no field validation happens at this layer yet.
	ErrValidation = errors.New("validation failure")
	// ErrPersistence covers every other database or transaction failure.
	ErrPersistence = errors.New("persistence failure")
)

func isClassified(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrPersistence)
}

// wrapErr prefixes err with op and attaches its kind. Raw gorm errors are
// classified here so they never leave the package unwrapped.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isClassified(err):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}
}
