package basedecode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is returned when the base is outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("basedecode: base must be between 2 and 36")

	// ErrInvalidDigit is matched by every *DigitError.
	ErrInvalidDigit = errors.New("basedecode: invalid digit")

	// ErrEmptyDigits is returned when the digit string is empty.
	ErrEmptyDigits = errors.New("basedecode: digit string is empty")

	// ErrNegative is returned when encoding a negative value.
	ErrNegative = errors.New("basedecode: negative values are not supported")
)

// DigitError reports a character that is not a valid digit for the base.
type DigitError struct {
	Char rune
	Pos  int
	Base int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("basedecode: invalid digit %q at position %d for base %d", e.Char, e.Pos, e.Base)
}

func (e *DigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}
