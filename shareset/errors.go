package shareset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKeys is returned when the document has no "keys" block.
	ErrMissingKeys = errors.New("shareset: missing keys block")

	// ErrInvalidThreshold is returned when k is not within [1, n].
	ErrInvalidThreshold = errors.New("shareset: threshold k must be between 1 and n")

	// ErrInvalidKey is returned when a share key is not a decimal integer.
	ErrInvalidKey = errors.New("shareset: share key must be a decimal integer")

	// ErrDuplicateKey is returned when a share key appears more than once.
	ErrDuplicateKey = errors.New("shareset: duplicate share key")

	// ErrInvalidNumber is returned when n, k or base is not an integer.
	ErrInvalidNumber = errors.New("shareset: invalid integer value")

	// ErrUnsupportedFormat is returned for unknown document formats.
	ErrUnsupportedFormat = errors.New("shareset: unsupported document format")

	// ErrInvalidDocument is returned when the document is not an object.
	ErrInvalidDocument = errors.New("shareset: document must be an object")

	// ErrInvalidOrder is returned for unknown share orderings.
	ErrInvalidOrder = errors.New("shareset: unknown share order")
)

// EntryError wraps a failure that belongs to a single share entry.
type EntryError struct {
	Key string
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("shareset: share %q: %v", e.Key, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
