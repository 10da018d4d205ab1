/*
config.go - Injectable rule configuration

PURPOSE:
  Bundles everything the engine needs that is policy rather than code:
  the locale lookup table, the refund window table, the operating
  timezone and its staffed hours, and the terms-of-service epoch.
  Tests supply synthetic tables; production uses DefaultConfig.

SEE ALSO:
  - evaluator.go: New() validates a Config and freezes it
  - factory/config.go: JSON form of this structure
*/
package eligibility

// EpochLayout is the wall-clock layout for Config.NewTOSEpoch,
// interpreted in the operating timezone.
const EpochLayout = "2006-01-02 15:04"

// Config is the injectable rule set. It is read-only once an Evaluator
// has been built from it.
type Config struct {
	// OperatingZone is the IANA zone business-hours rules are evaluated
	// in, independent of the customer's own timezone.
	OperatingZone string

	// Staffed hours on business days, half-open: OpenHour is in-hours,
	// CloseHour is out-of-hours.
	OpenHour  int
	CloseHour int

	// NewTOSEpoch is the instant (EpochLayout, operating-zone wall
	// clock) at or after which signups fall under the current terms of
	// service.
	NewTOSEpoch string

	// Zones maps customer locale labels to timezone profiles.
	Zones map[string]TimezoneProfile

	// Windows maps each channel to its per-cohort refund windows.
	Windows map[Source]Window
}

// DefaultConfig returns the production rule set.
//
// The source feed writes dates day-first for every locale, US labels
// included, so all profiles share the 2/1/2006 layout. The layout
// stays per-profile so a month-first locale is a config change, not a
// code change.
func DefaultConfig() *Config {
	return &Config{
		OperatingZone: "Europe/London",
		OpenHour:      9,
		CloseHour:     17,
		NewTOSEpoch:   "2020-01-03 00:00",
		Zones: map[string]TimezoneProfile{
			"US (PST)":     {IANA: "America/Los_Angeles", DateLayout: "2/1/2006"},
			"US (EST)":     {IANA: "America/New_York", DateLayout: "2/1/2006"},
			"Europe (CET)": {IANA: "Europe/Paris", DateLayout: "2/1/2006"},
			"Europe (GMT)": {IANA: "Europe/London", DateLayout: "2/1/2006"},
		},
		Windows: map[Source]Window{
			SourceWebApp: {OldTOS: Hours(8), NewTOS: Hours(16)},
			SourcePhone:  {OldTOS: Hours(4), NewTOS: Hours(24), RollsForward: true},
		},
	}
}
