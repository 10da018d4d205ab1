/*
handlers.go - HTTP API handlers for the refund eligibility service

PURPOSE:
  Exposes the eligibility engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Reversals:
    GET    /api/reversals    List the loaded records with their verdicts
    POST   /api/evaluate     Evaluate one ad-hoc record

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Engine: the rules engine (read-only, safe for concurrent use)
  - Reversals: the static records the service was started with

ERROR HANDLING:
  A record that fails classification (unknown timezone, unknown
  channel, malformed date) is NOT an HTTP error: it renders as
  eligible=false with the reason attached, because eligibility unknown
  displays as not eligible. HTTP errors are reserved for requests the
  server cannot read:
  - 400: Malformed JSON body
  - 500: Internal errors

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/samber/lo"

	"github.com/warp/refund-engine/eligibility"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine    *eligibility.Evaluator
	Reversals []eligibility.ReversalRequest
}

// NewHandler creates a new handler serving the given records.
func NewHandler(engine *eligibility.Evaluator, reversals []eligibility.ReversalRequest) *Handler {
	return &Handler{Engine: engine, Reversals: reversals}
}

// =============================================================================
// REVERSAL HANDLERS
// =============================================================================

// ListReversals returns every loaded record with its verdict.
// GET /api/reversals
func (h *Handler) ListReversals(w http.ResponseWriter, r *http.Request) {
	rows := lo.Map(h.Reversals, func(req eligibility.ReversalRequest, _ int) ReversalDTO {
		return h.toReversalDTO(req)
	})
	writeJSON(w, http.StatusOK, rows)
}

// EvaluateReversal evaluates a single submitted record.
// POST /api/evaluate
func (h *Handler) EvaluateReversal(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	ev, err := h.Engine.Evaluate(body.toReversalRequest())
	if err != nil {
		if eligibility.IsClientError(err) {
			// Eligibility unknown renders as not eligible.
			writeJSON(w, http.StatusOK, EvaluationDTO{Eligible: false, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, toEvaluationDTO(ev))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) toReversalDTO(req eligibility.ReversalRequest) ReversalDTO {
	dto := ReversalDTO{
		Name:           req.Name,
		CustomerTZ:     req.CustomerTZ,
		SignupDate:     req.SignupDate,
		Source:         req.Source,
		InvestmentDate: req.InvestmentDate,
		InvestmentTime: req.InvestmentTime,
		RequestDate:    req.RequestDate,
		RequestTime:    req.RequestTime,
	}

	eligible, err := h.Engine.DetermineRefundEligibility(req)
	if err != nil {
		dto.Error = err.Error()
		return dto
	}
	dto.Eligible = eligible
	return dto
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
