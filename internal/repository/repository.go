// Package repository wraps every entity's CRUD behind small structs
// over a shared *gorm.DB. Mutations run inside a transaction that
// commits on success and rolls back on any failure, so a failed
// create/update/delete leaves no partial row. Lookups of missing ids
// report ErrNotFound, distinct from a persistence failure.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound reports that an id did not resolve to a row.
var ErrNotFound = errors.New("record not found")

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func lowered(s string) string {
	return strings.ToLower(s)
}
