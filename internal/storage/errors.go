package storage

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference means a foreign key points at a row that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrReferenced means the row is still referenced by other rows and can't be removed.
	ErrReferenced = errors.New("referenced by other records")
	// ErrInvalidValue means a value does not fit its column.
	ErrInvalidValue = errors.New("value out of range for column")
)
