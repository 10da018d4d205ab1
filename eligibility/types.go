/*
Package eligibility decides whether an investment-reversal request
qualifies for a refund.

PURPOSE:
  This package contains the complete rules engine: timezone resolution,
  terms-of-service cohort classification, business-hours classification,
  business-day rollforward, effective-request-time resolution, and the
  final window comparison that yields the verdict.

KEY CONCEPTS IN THIS FILE (types.go):
  - ReversalRequest: One customer record, exactly as it appears in the
    source feed (locale-formatted date/time strings)
  - TimezoneProfile: IANA zone + the date layout used by that locale
  - Amount: A decimal quantity of hours (refund windows, elapsed time)
  - Window: Refund window lengths per terms-of-service cohort
  - Evaluation: The verdict plus the intermediate facts behind it

DESIGN PRINCIPLES:
  1. Purity: every evaluation is request-scoped; nothing is mutated
     outside the call stack, so evaluations can run in parallel
  2. Precision: decimal.Decimal for hour arithmetic shown to users
  3. No fallbacks: an unknown timezone label or channel is a
     classification failure, never a guess

USAGE:
  eng, err := eligibility.New(eligibility.DefaultConfig())
  eligible, err := eng.DetermineRefundEligibility(request)

SEE ALSO:
  - evaluator.go: Orchestration and the window comparison
  - hours.go: Business-hours rules and rollforward
  - errors.go: Classification failure taxonomy
*/
package eligibility

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// REVERSAL REQUEST - One record, one evaluation
// =============================================================================

// ReversalRequest is a single customer reversal record. All fields are
// strings because that is how the feed delivers them; dates and times
// are wall-clock values in the customer's own timezone, written in the
// locale's date layout.
type ReversalRequest struct {
	Name           string // display label, not used in logic
	CustomerTZ     string // locale label, e.g. "US (PST)"
	SignupDate     string
	Source         string // channel the request came through
	InvestmentDate string
	InvestmentTime string
	RequestDate    string
	RequestTime    string
}

// Source is the channel a reversal request was made through.
type Source string

const (
	SourceWebApp Source = "web app"
	SourcePhone  Source = "phone"
)

// =============================================================================
// TIMEZONE PROFILE - Locale label resolution target
// =============================================================================

// TimezoneProfile pairs an IANA zone name with the date layout used to
// parse that locale's date strings. Every known customer locale label
// maps to exactly one profile; there is no default zone.
type TimezoneProfile struct {
	IANA       string // e.g. "America/Los_Angeles"
	DateLayout string // Go reference layout, e.g. "2/1/2006"
}

// TimeLayout is the layout for the time-of-day fields (24-hour HH:MM).
const TimeLayout = "15:04"

// DateTimeLayout combines the profile's date layout with the shared
// time-of-day layout.
func (p TimezoneProfile) DateTimeLayout() string {
	return p.DateLayout + " " + TimeLayout
}

// =============================================================================
// AMOUNT - Quantity of hours
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const UnitHours Unit = "hours"

// Hours builds an Amount of whole hours.
func Hours(n int) Amount {
	return Amount{Value: decimal.NewFromInt(int64(n)), Unit: UnitHours}
}

// HoursBetween returns the elapsed time from a to b as a decimal
// amount of hours. Negative when b precedes a.
func HoursBetween(a, b time.Time) Amount {
	seconds := decimal.NewFromInt(int64(b.Sub(a) / time.Second))
	return Amount{Value: seconds.Div(decimal.NewFromInt(3600)), Unit: UnitHours}
}

// Duration converts the amount to a time.Duration.
func (a Amount) Duration() time.Duration {
	return time.Duration(a.Value.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart())
}

func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }
func (a Amount) IsNegative() bool          { return a.Value.IsNegative() }
func (a Amount) String() string            { return a.Value.String() + " " + string(a.Unit) }

// =============================================================================
// WINDOW - Refund window lengths per cohort
// =============================================================================

// Window holds one channel's policy: the refund window length for
// each terms-of-service cohort, and whether an out-of-hours request on
// this channel rolls forward to the next business-day opening. Staffed
// channels roll forward; self-served ones are accepted at any hour.
type Window struct {
	OldTOS       Amount
	NewTOS       Amount
	RollsForward bool
}

// =============================================================================
// EVALUATION - Verdict with supporting facts
// =============================================================================

// Evaluation is the full outcome of one eligibility check. The display
// layer renders Eligible; the remaining fields explain the verdict.
type Evaluation struct {
	Eligible bool
	NewTOS   bool
	Window   Amount

	// Instants normalized to the operating timezone.
	InvestedAt  time.Time
	EffectiveAt time.Time

	// Elapsed hours from investment to effective request time.
	Elapsed Amount
}
