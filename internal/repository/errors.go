package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound indicates a lookup by identifier matched no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate indicates an insert or update violated a uniqueness invariant
// (github handles, repo URLs, course names, the assignment triple).
var ErrDuplicate = errors.New("duplicate record")

// translate maps driver-level failures onto the store's error kinds so that
// callers never match on raw database errors. GORM's TranslateError covers the
// common cases; the string checks catch drivers that predate it.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value") {
		return ErrDuplicate
	}

	return err
}
