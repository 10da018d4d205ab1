/*
hours.go - Business-hours classification and rollforward

PURPOSE:
  Both rules are evaluated on the instant's wall clock in the operating
  timezone; the customer's own zone plays no part here. Business hours
  are weekdays [OpenHour, CloseHour), half-open: opening time is
  in-hours, closing time is out-of-hours.

ROLLFORWARD:
  NextOpening maps an out-of-hours instant to the next business-day
  opening:
    Sunday, any hour          -> Monday opening
    Saturday, any hour        -> Monday opening
    weekday before opening    -> same day opening
    Friday at/after closing   -> Monday opening
    Mon-Thu at/after closing  -> next day opening
  An in-hours weekday instant violates the precondition and returns
  ErrInHours rather than silently rolling to the next day.
*/
package eligibility

import "time"

// IsOutOfHours reports whether t falls outside staffed business hours.
// Total over any instant; never fails.
func (e *Evaluator) IsOutOfHours(t time.Time) bool {
	local := t.In(e.operating)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	hour := local.Hour()
	return hour < e.cfg.OpenHour || hour >= e.cfg.CloseHour
}

// NextOpening returns the next instant at the opening hour of a
// business day, in the operating timezone. The input must be
// out-of-hours; in-hours input returns ErrInHours.
func (e *Evaluator) NextOpening(t time.Time) (time.Time, error) {
	local := t.In(e.operating)

	var days int
	switch wd, hour := local.Weekday(), local.Hour(); {
	case wd == time.Sunday:
		days = 1
	case wd == time.Saturday:
		days = 2
	case hour < e.cfg.OpenHour:
		days = 0
	case hour >= e.cfg.CloseHour:
		if wd == time.Friday {
			days = 3
		} else {
			days = 1
		}
	default:
		return time.Time{}, ErrInHours
	}

	// time.Date normalizes the day offset, so month boundaries and DST
	// transitions are handled by the zone database.
	return time.Date(local.Year(), local.Month(), local.Day()+days,
		e.cfg.OpenHour, 0, 0, 0, e.operating), nil
}
