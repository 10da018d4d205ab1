/*
Package factory provides JSON to Go rule configuration conversion.

PURPOSE:
  Converts JSON rule definitions into an eligibility.Config. This
  enables rule changes without code changes - operations can adjust the
  locale table, refund windows, staffed hours, or the terms-of-service
  epoch in JSON, and the factory creates the proper Go structs.

JSON SCHEMA:
  {
    "operating_zone": "Europe/London",
    "open_hour": 9,
    "close_hour": 17,
    "new_tos_epoch": "2020-01-03 00:00",
    "zones": {
      "US (PST)": {"iana": "America/Los_Angeles", "date_layout": "2/1/2006"}
    },
    "windows": {
      "web app": {"old_tos_hours": 8, "new_tos_hours": 16},
      "phone":   {"old_tos_hours": 4, "new_tos_hours": 24, "rolls_forward": true}
    }
  }

KEY FEATURES:
  - Validates JSON structure
  - Sets sensible defaults (operating zone, hours, epoch)
  - Leaves zone/window tables explicit: an empty table is an error,
    never silently defaulted

USAGE:
  f := factory.NewConfigFactory()
  cfg, err := f.ParseConfig(jsonString)
  eng, err := eligibility.New(cfg)

SEE ALSO:
  - eligibility/config.go: Config type and production defaults
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/refund-engine/eligibility"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ConfigJSON is the JSON representation of the rule configuration.
type ConfigJSON struct {
	OperatingZone string                `json:"operating_zone,omitempty"`
	OpenHour      *int                  `json:"open_hour,omitempty"`
	CloseHour     *int                  `json:"close_hour,omitempty"`
	NewTOSEpoch   string                `json:"new_tos_epoch,omitempty"`
	Zones         map[string]ZoneJSON   `json:"zones"`
	Windows       map[string]WindowJSON `json:"windows"`
}

// ZoneJSON represents one locale label entry.
type ZoneJSON struct {
	IANA       string `json:"iana"`
	DateLayout string `json:"date_layout"`
}

// WindowJSON represents one channel's policy: per-cohort refund
// windows and whether out-of-hours requests roll forward to the next
// business-day opening.
type WindowJSON struct {
	OldTOSHours  int  `json:"old_tos_hours"`
	NewTOSHours  int  `json:"new_tos_hours"`
	RollsForward bool `json:"rolls_forward,omitempty"`
}

// =============================================================================
// CONFIG FACTORY
// =============================================================================

// ConfigFactory converts JSON rule definitions to Go structs.
type ConfigFactory struct{}

// NewConfigFactory creates a new config factory.
func NewConfigFactory() *ConfigFactory {
	return &ConfigFactory{}
}

// ParseConfig parses a JSON string into an eligibility.Config.
func (f *ConfigFactory) ParseConfig(jsonStr string) (*eligibility.Config, error) {
	var cj ConfigJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return f.FromJSON(cj)
}

// FromJSON converts ConfigJSON to an eligibility.Config, applying
// defaults for the operating zone, staffed hours, and epoch.
func (f *ConfigFactory) FromJSON(cj ConfigJSON) (*eligibility.Config, error) {
	defaults := eligibility.DefaultConfig()

	cfg := &eligibility.Config{
		OperatingZone: cj.OperatingZone,
		OpenHour:      defaults.OpenHour,
		CloseHour:     defaults.CloseHour,
		NewTOSEpoch:   cj.NewTOSEpoch,
	}
	if cfg.OperatingZone == "" {
		cfg.OperatingZone = defaults.OperatingZone
	}
	if cfg.NewTOSEpoch == "" {
		cfg.NewTOSEpoch = defaults.NewTOSEpoch
	}
	if cj.OpenHour != nil {
		cfg.OpenHour = *cj.OpenHour
	}
	if cj.CloseHour != nil {
		cfg.CloseHour = *cj.CloseHour
	}

	if len(cj.Zones) == 0 {
		return nil, fmt.Errorf("config defines no zones")
	}
	cfg.Zones = make(map[string]eligibility.TimezoneProfile, len(cj.Zones))
	for label, zj := range cj.Zones {
		if zj.IANA == "" || zj.DateLayout == "" {
			return nil, fmt.Errorf("zone %q: iana and date_layout are required", label)
		}
		cfg.Zones[label] = eligibility.TimezoneProfile{
			IANA:       zj.IANA,
			DateLayout: zj.DateLayout,
		}
	}

	if len(cj.Windows) == 0 {
		return nil, fmt.Errorf("config defines no windows")
	}
	cfg.Windows = make(map[eligibility.Source]eligibility.Window, len(cj.Windows))
	for source, wj := range cj.Windows {
		if wj.OldTOSHours <= 0 || wj.NewTOSHours <= 0 {
			return nil, fmt.Errorf("window %q: hours must be positive", source)
		}
		cfg.Windows[eligibility.Source(source)] = eligibility.Window{
			OldTOS:       eligibility.Hours(wj.OldTOSHours),
			NewTOS:       eligibility.Hours(wj.NewTOSHours),
			RollsForward: wj.RollsForward,
		}
	}

	return cfg, nil
}
