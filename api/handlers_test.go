/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Reversal listing with rendered verdicts
- Ad-hoc evaluation, including the not-eligible display rule for
  classification failures
*/
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/refund-engine/dataset"
	"github.com/warp/refund-engine/eligibility"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	eng, err := eligibility.New(eligibility.DefaultConfig())
	require.NoError(t, err)

	reversals, err := dataset.Load()
	require.NoError(t, err)

	return NewRouter(NewHandler(eng, reversals))
}

func TestListReversals_RendersVerdicts(t *testing.T) {
	// GIVEN: The shipped records
	// WHEN: GET /api/reversals
	// THEN: Every record appears with a verdict; records that fail
	//       classification render as not eligible with the reason

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reversals", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []ReversalDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.NotEmpty(t, rows)

	byName := make(map[string]ReversalDTO, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}

	assert.True(t, byName["Emma Smith"].Eligible)
	assert.Empty(t, byName["Emma Smith"].Error)

	assert.False(t, byName["James Wright"].Eligible)
	assert.Empty(t, byName["James Wright"].Error)

	// Unknown timezone renders as not eligible, not as a server error.
	assert.False(t, byName["Liam Foster"].Eligible)
	assert.Contains(t, byName["Liam Foster"].Error, "unknown timezone")

	assert.False(t, byName["Ava Mitchell"].Eligible)
	assert.Contains(t, byName["Ava Mitchell"].Error, "unknown request source")
}

func TestEvaluateReversal_EligibleRecord(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"name": "probe",
		"customer_tz": "Europe (CET)",
		"signup_date": "5/6/2018",
		"source": "phone",
		"investment_date": "15/07/2025",
		"investment_time": "10:00",
		"request_date": "15/07/2025",
		"request_time": "13:30"
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out EvaluationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.True(t, out.Eligible)
	assert.False(t, out.NewTOS)
	assert.Equal(t, "4", out.WindowHours)
	assert.Equal(t, "3.50", out.ElapsedHours)
	assert.Empty(t, out.Error)
}

func TestEvaluateReversal_ClassificationFailureDisplaysNotEligible(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"name": "probe",
		"customer_tz": "Europe (GMT)",
		"signup_date": "31/12/2019",
		"source": "carrier pigeon",
		"investment_date": "15/07/2025",
		"investment_time": "10:00",
		"request_date": "15/07/2025",
		"request_time": "11:00"
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out EvaluationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.False(t, out.Eligible)
	assert.Contains(t, out.Error, "unknown request source")
}

func TestEvaluateReversal_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
