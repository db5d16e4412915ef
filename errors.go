package composite

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound indicates the substitution source had no value for a key.
var ErrKeyNotFound = errors.New("composite: key not found")

// ErrInvalidAlignment indicates an alignment field that is not a signed integer.
var ErrInvalidAlignment = errors.New("composite: invalid alignment")

// ErrInvalidFormat indicates a format specifier the resolved value cannot satisfy.
var ErrInvalidFormat = errors.New("composite: invalid format")

// KeyNotFoundError reports the placeholder key that could not be resolved.
// Formatting aborts on the first missing key; no partial output is produced.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("composite: no value for key %q", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// InvalidAlignmentError carries the raw alignment text that failed integer parsing.
type InvalidAlignmentError struct {
	Alignment string
}

func (e *InvalidAlignmentError) Error() string {
	return fmt.Sprintf("composite: alignment %q is not an integer", e.Alignment)
}

func (e *InvalidAlignmentError) Unwrap() error {
	return ErrInvalidAlignment
}

// InvalidFormatError carries the raw format text that was rejected, either
// because the specifier grammar is violated or because a non-empty specifier
// was applied to a non-numeric value.
type InvalidFormatError struct {
	Format string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("composite: invalid format specifier %q", e.Format)
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}
