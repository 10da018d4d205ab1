package eligibility_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/refund-engine/eligibility"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newEngine(t *testing.T) *eligibility.Evaluator {
	t.Helper()
	eng, err := eligibility.New(eligibility.DefaultConfig())
	require.NoError(t, err)
	return eng
}

// =============================================================================
// RESOLVER TESTS
// =============================================================================

func TestResolve_KnownLabels(t *testing.T) {
	// GIVEN: The production locale table
	// WHEN: Resolving every label in it
	// THEN: Each resolves to a profile with a zone and a date layout

	eng := newEngine(t)

	for label := range eligibility.DefaultConfig().Zones {
		profile, err := eng.Resolve(label)
		require.NoError(t, err, "label %q", label)
		assert.NotEmpty(t, profile.IANA)
		assert.NotEmpty(t, profile.DateLayout)
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.Resolve("Mars (MTC)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, eligibility.ErrUnknownTimezone))

	var utz *eligibility.UnknownTimezoneError
	require.True(t, errors.As(err, &utz))
	assert.Equal(t, "Mars (MTC)", utz.Label)
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	// GIVEN: Labels that differ from a known one only in case or spacing
	// WHEN: Resolving them
	// THEN: They fail; there is no normalization or fuzzy matching

	eng := newEngine(t)

	for _, label := range []string{"us (pst)", " US (PST)", "US (PST) ", "US(PST)"} {
		_, err := eng.Resolve(label)
		assert.True(t, errors.Is(err, eligibility.ErrUnknownTimezone), "label %q", label)
	}
}
