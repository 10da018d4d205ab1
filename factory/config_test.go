package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/refund-engine/eligibility"
	"github.com/warp/refund-engine/factory"
)

const syntheticConfig = `{
	"operating_zone": "UTC",
	"open_hour": 8,
	"close_hour": 18,
	"new_tos_epoch": "2021-06-01 00:00",
	"zones": {
		"Test (UTC)": {"iana": "UTC", "date_layout": "2006-01-02"}
	},
	"windows": {
		"kiosk":   {"old_tos_hours": 2, "new_tos_hours": 3},
		"counter": {"old_tos_hours": 2, "new_tos_hours": 3, "rolls_forward": true}
	}
}`

// =============================================================================
// PARSING TESTS
// =============================================================================

func TestParseConfig_SyntheticLocaleAndChannel(t *testing.T) {
	// GIVEN: A config with a synthetic locale and a synthetic channel
	// WHEN: Parsing it and building an engine from it
	// THEN: The engine evaluates records written in that locale/channel

	f := factory.NewConfigFactory()
	cfg, err := f.ParseConfig(syntheticConfig)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.OperatingZone)
	assert.Equal(t, 8, cfg.OpenHour)
	assert.Equal(t, 18, cfg.CloseHour)
	assert.False(t, cfg.Windows["kiosk"].RollsForward)
	assert.True(t, cfg.Windows["counter"].RollsForward)

	eng, err := eligibility.New(cfg)
	require.NoError(t, err)

	// Wednesday investment at 08:00 UTC, kiosk request 2.5h later,
	// new-cohort window 3h.
	eligible, err := eng.DetermineRefundEligibility(eligibility.ReversalRequest{
		Name:           "synthetic",
		CustomerTZ:     "Test (UTC)",
		SignupDate:     "2021-06-01",
		Source:         "kiosk",
		InvestmentDate: "2021-06-02",
		InvestmentTime: "08:00",
		RequestDate:    "2021-06-02",
		RequestTime:    "10:30",
	})
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestParseConfig_RollforwardChannelFromJSON(t *testing.T) {
	// GIVEN: A synthetic staffed channel configured in JSON
	// WHEN: Its request arrives after closing, before the investment
	// THEN: It is deemed received at the next opening - after the
	//       investment and inside the window - so the verdict flips
	//       to eligible purely because of the configured rollforward

	f := factory.NewConfigFactory()
	cfg, err := f.ParseConfig(syntheticConfig)
	require.NoError(t, err)

	eng, err := eligibility.New(cfg)
	require.NoError(t, err)

	// Wednesday 19:00 UTC is out-of-hours (close 18); next opening is
	// Thursday 08:00, two hours after the Thursday 06:00 investment.
	eligible, err := eng.DetermineRefundEligibility(eligibility.ReversalRequest{
		Name:           "synthetic",
		CustomerTZ:     "Test (UTC)",
		SignupDate:     "2021-06-01",
		Source:         "counter",
		InvestmentDate: "2021-06-03",
		InvestmentTime: "06:00",
		RequestDate:    "2021-06-02",
		RequestTime:    "19:00",
	})
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestParseConfig_DefaultsApplied(t *testing.T) {
	// Zones and windows are required; everything else defaults.
	f := factory.NewConfigFactory()
	cfg, err := f.ParseConfig(`{
		"zones": {"Europe (GMT)": {"iana": "Europe/London", "date_layout": "2/1/2006"}},
		"windows": {"phone": {"old_tos_hours": 4, "new_tos_hours": 24}}
	}`)
	require.NoError(t, err)

	defaults := eligibility.DefaultConfig()
	assert.Equal(t, defaults.OperatingZone, cfg.OperatingZone)
	assert.Equal(t, defaults.OpenHour, cfg.OpenHour)
	assert.Equal(t, defaults.CloseHour, cfg.CloseHour)
	assert.Equal(t, defaults.NewTOSEpoch, cfg.NewTOSEpoch)
}

func TestParseConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"invalid json", `{`},
		{"no zones", `{"windows": {"phone": {"old_tos_hours": 4, "new_tos_hours": 24}}}`},
		{"no windows", `{"zones": {"X": {"iana": "UTC", "date_layout": "2/1/2006"}}}`},
		{"zone missing layout", `{
			"zones": {"X": {"iana": "UTC"}},
			"windows": {"phone": {"old_tos_hours": 4, "new_tos_hours": 24}}
		}`},
		{"nonpositive window", `{
			"zones": {"X": {"iana": "UTC", "date_layout": "2/1/2006"}},
			"windows": {"phone": {"old_tos_hours": 0, "new_tos_hours": 24}}
		}`},
	}

	f := factory.NewConfigFactory()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ParseConfig(tc.json)
			assert.Error(t, err)
		})
	}
}
