package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrStoreUnavailable is wrapped in a StoreError when the repository has no open pool.
var ErrStoreUnavailable = errors.New("store unavailable")

var (
	errRequiredFilter = errors.New("required filter")
	errNoFields       = errors.New("no fields to update")
)

// EntityNotFoundError reports that a single-row read, update or delete matched no row.
type EntityNotFoundError struct {
	Entity string
	ID     string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity not found: %s - %s", e.Entity, e.ID)
}

// StoreError wraps any store failure that is not a missing row.
type StoreError struct {
	Op     string
	Entity string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s data (%s): %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var notFound *EntityNotFoundError

	return errors.As(err, &notFound)
}

// FetchOneResult maps sql.ErrNoRows to EntityNotFoundError and wraps anything else in a StoreError.
func FetchOneResult[T any](model T, err error, op, entity, id string) (T, error) {
	if err == nil {
		return model, nil
	}

	var zero T

	if errors.Is(err, sql.ErrNoRows) {
		return zero, &EntityNotFoundError{Entity: entity, ID: id}
	}

	return zero, &StoreError{Op: op, Entity: entity, Err: err}
}
