package catalog

import "errors"

var (
	// ErrNotFound is returned when no gym has the requested id.
	ErrNotFound = errors.New("gym not found")

	// ErrDataFormat is returned when the backing CSV is malformed: the
	// header is missing a required column or a numeric field does not
	// parse. Rows that parse but fail field validation are skipped with a
	// warning instead.
	ErrDataFormat = errors.New("malformed catalog data")
)
