/*
errors.go - Centralized error types for the eligibility engine

PURPOSE:
  All classification failures in one place. These are expected,
  recoverable outcomes of evaluating a record - never panics, never
  retried (inputs are deterministic), and scoped to the single record
  being evaluated.

ERROR CATEGORIES:
  1. Classification errors - unknown timezone label or channel
  2. Parse errors - malformed date/time strings
  3. Precondition errors - rollforward called on an in-hours instant

USAGE:
  Callers branch with errors.Is:

    if errors.Is(err, eligibility.ErrUnknownTimezone) {
        // render as "not eligible", keep going
    }

SEE ALSO:
  - evaluator.go: Propagates these unwrapped, short-circuiting on first failure
*/
package eligibility

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownTimezone is returned when a customer timezone label is
	// not in the lookup table. Exact match only, no fuzzy fallback.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrUnknownSource is returned when the request channel is neither
	// "web app" nor "phone".
	ErrUnknownSource = errors.New("unknown request source")

	// ErrBadDate is returned when a date or time string does not parse
	// under the locale's layout.
	ErrBadDate = errors.New("malformed date or time")

	// ErrInHours is returned when rollforward is asked about an instant
	// that is already inside business hours.
	ErrInHours = errors.New("instant is within business hours")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the offending label
// =============================================================================

// UnknownTimezoneError reports a customer timezone label missing from
// the lookup table.
type UnknownTimezoneError struct {
	Label string
}

func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("unknown timezone: %s", e.Label)
}

func (e *UnknownTimezoneError) Unwrap() error { return ErrUnknownTimezone }

// UnknownSourceError reports an unrecognized request channel.
type UnknownSourceError struct {
	Label string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown request source: %s", e.Label)
}

func (e *UnknownSourceError) Unwrap() error { return ErrUnknownSource }

// BadDateError reports a date or time string that failed to parse.
type BadDateError struct {
	Field  string // offending field(s), e.g. "signupDate" or "requestDate+requestTime"
	Value  string
	Layout string
	Err    error
}

func (e *BadDateError) Error() string {
	return fmt.Sprintf("malformed %s %q (want layout %s): %v", e.Field, e.Value, e.Layout, e.Err)
}

func (e *BadDateError) Unwrap() error { return ErrBadDate }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is a classification failure
// caused by the record's own content, as opposed to engine misuse.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownTimezone) ||
		errors.Is(err, ErrUnknownSource) ||
		errors.Is(err, ErrBadDate)
}
