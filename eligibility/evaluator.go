/*
evaluator.go - Engine construction and the eligibility verdict

PURPOSE:
  Evaluator freezes a validated Config (zone locations loaded, epoch
  parsed) and exposes the engine's operations as methods. Evaluate
  orchestrates the full pipeline for one record:

    resolve timezone -> parse investment instant -> effective request
    time -> terms-of-service cohort -> window selection -> verdict

  Evaluation short-circuits on the first classification failure and
  propagates it unwrapped.

VERDICT RULE:
  Eligible iff the effective request instant falls inside the closed
  interval [investment, investment + window]. Both endpoints count.

SEE ALSO:
  - effective.go: Channel-specific request-time policy
  - tos.go: Cohort classification
  - hours.go: Business-hours rules
*/
package eligibility

import (
	"fmt"
	"time"
)

// =============================================================================
// EVALUATOR
// =============================================================================

// Evaluator is the rules engine. It holds only read-only state built
// once from a Config, so a single Evaluator is safe for concurrent use.
type Evaluator struct {
	cfg       *Config
	operating *time.Location
	epoch     time.Time
	locations map[string]*time.Location // keyed by locale label
}

// New validates cfg and builds an Evaluator. Every zone in the table is
// resolved up front: a table entry naming a bad IANA zone is a
// construction error, not a per-request one.
func New(cfg *Config) (*Evaluator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.OpenHour < 0 || cfg.CloseHour > 24 || cfg.OpenHour >= cfg.CloseHour {
		return nil, fmt.Errorf("invalid business hours [%d, %d)", cfg.OpenHour, cfg.CloseHour)
	}
	if len(cfg.Zones) == 0 {
		return nil, fmt.Errorf("timezone table is empty")
	}
	if len(cfg.Windows) == 0 {
		return nil, fmt.Errorf("window table is empty")
	}

	operating, err := time.LoadLocation(cfg.OperatingZone)
	if err != nil {
		return nil, fmt.Errorf("operating zone %q: %w", cfg.OperatingZone, err)
	}

	epoch, err := time.ParseInLocation(EpochLayout, cfg.NewTOSEpoch, operating)
	if err != nil {
		return nil, fmt.Errorf("terms-of-service epoch %q: %w", cfg.NewTOSEpoch, err)
	}

	locations := make(map[string]*time.Location, len(cfg.Zones))
	for label, profile := range cfg.Zones {
		loc, err := time.LoadLocation(profile.IANA)
		if err != nil {
			return nil, fmt.Errorf("zone table entry %q -> %q: %w", label, profile.IANA, err)
		}
		locations[label] = loc
	}

	return &Evaluator{
		cfg:       cfg,
		operating: operating,
		epoch:     epoch,
		locations: locations,
	}, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

// parseLocalDate parses a locale-formatted date at local midnight in
// the customer's zone and returns the absolute instant.
func (e *Evaluator) parseLocalDate(label, field, value string) (time.Time, error) {
	profile, err := e.Resolve(label)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(profile.DateLayout, value, e.locations[label])
	if err != nil {
		return time.Time{}, &BadDateError{Field: field, Value: value, Layout: profile.DateLayout, Err: err}
	}
	return t, nil
}

// parseLocalDateTime parses a locale-formatted date + HH:MM pair as a
// customer-local wall clock and returns the absolute instant.
func (e *Evaluator) parseLocalDateTime(label, field, date, clock string) (time.Time, error) {
	profile, err := e.Resolve(label)
	if err != nil {
		return time.Time{}, err
	}
	layout := profile.DateTimeLayout()
	value := date + " " + clock
	t, err := time.ParseInLocation(layout, value, e.locations[label])
	if err != nil {
		return time.Time{}, &BadDateError{Field: field, Value: value, Layout: layout, Err: err}
	}
	return t, nil
}

// =============================================================================
// WINDOW SELECTION
// =============================================================================

// window picks the refund window length for a channel and cohort.
func (e *Evaluator) window(source Source, newTOS bool) (Amount, error) {
	w, ok := e.cfg.Windows[source]
	if !ok {
		return Amount{}, &UnknownSourceError{Label: string(source)}
	}
	if newTOS {
		return w.NewTOS, nil
	}
	return w.OldTOS, nil
}

// =============================================================================
// ELIGIBILITY VERDICT
// =============================================================================

// Evaluate runs the full pipeline for one record and returns the
// verdict with its supporting facts. The first classification failure
// aborts the evaluation and is returned unwrapped.
func (e *Evaluator) Evaluate(req ReversalRequest) (*Evaluation, error) {
	invested, err := e.parseLocalDateTime(req.CustomerTZ, "investmentDate+investmentTime", req.InvestmentDate, req.InvestmentTime)
	if err != nil {
		return nil, err
	}
	invested = invested.In(e.operating)

	effective, err := e.EffectiveRequestTime(req)
	if err != nil {
		return nil, err
	}

	newTOS, err := e.IsNewTOS(req)
	if err != nil {
		return nil, err
	}

	window, err := e.window(Source(req.Source), newTOS)
	if err != nil {
		return nil, err
	}

	deadline := invested.Add(window.Duration())
	eligible := !effective.Before(invested) && !effective.After(deadline)

	return &Evaluation{
		Eligible:    eligible,
		NewTOS:      newTOS,
		Window:      window,
		InvestedAt:  invested,
		EffectiveAt: effective,
		Elapsed:     HoursBetween(invested, effective),
	}, nil
}

// DetermineRefundEligibility reports whether the request qualifies for
// a refund. This is the boolean contract the display layer consumes.
func (e *Evaluator) DetermineRefundEligibility(req ReversalRequest) (bool, error) {
	ev, err := e.Evaluate(req)
	if err != nil {
		return false, err
	}
	return ev.Eligible, nil
}
