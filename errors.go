package journal

import (
	"errors"
	"fmt"

	"github.com/fxtae/journal/date"
)

// ErrDailyLimit signals an attempt to record a trade on a date that already
// holds MaxTradesPerDay records.
var ErrDailyLimit = errors.New("maximum 4 trades per day reached")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing an unknown record id.
type NotFoundError struct {
	Kind string // "trade" or "dream"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// PersistenceError reports a storage read or write failure. Mutations that
// fail to persist are still applied in memory; callers surface this as a
// non-fatal warning.
type PersistenceError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsPersistenceWarning reports whether err is a non-nil *PersistenceError,
// meaning the mutation took effect in memory but was not persisted.
func IsPersistenceWarning(err error) bool {
	var perr *PersistenceError
	return errors.As(err, &perr)
}

// dailyLimitError wraps ErrDailyLimit with the offending date.
func dailyLimitError(on date.Date) error {
	return fmt.Errorf("%w on %s", ErrDailyLimit, on)
}
