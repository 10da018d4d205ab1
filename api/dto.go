/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the engine's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/refund-engine/eligibility"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ReversalDTO is one row of the eligibility table: the record's own
// fields plus the rendered verdict. When classification failed,
// Eligible is false and Error carries the reason.
type ReversalDTO struct {
	Name           string `json:"name"`
	CustomerTZ     string `json:"customer_tz"`
	SignupDate     string `json:"signup_date"`
	Source         string `json:"source"`
	InvestmentDate string `json:"investment_date"`
	InvestmentTime string `json:"investment_time"`
	RequestDate    string `json:"request_date"`
	RequestTime    string `json:"request_time"`

	Eligible bool   `json:"eligible"`
	Error    string `json:"error,omitempty"`
}

// EvaluateRequest is an ad-hoc record submitted for evaluation.
type EvaluateRequest struct {
	Name           string `json:"name"`
	CustomerTZ     string `json:"customer_tz"`
	SignupDate     string `json:"signup_date"`
	Source         string `json:"source"`
	InvestmentDate string `json:"investment_date"`
	InvestmentTime string `json:"investment_time"`
	RequestDate    string `json:"request_date"`
	RequestTime    string `json:"request_time"`
}

// EvaluationDTO is the detailed outcome of one evaluation.
type EvaluationDTO struct {
	Eligible     bool   `json:"eligible"`
	NewTOS       bool   `json:"new_tos,omitempty"`
	WindowHours  string `json:"window_hours,omitempty"`
	InvestedAt   string `json:"invested_at,omitempty"`
	EffectiveAt  string `json:"effective_at,omitempty"`
	ElapsedHours string `json:"elapsed_hours,omitempty"`
	Error        string `json:"error,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func (r EvaluateRequest) toReversalRequest() eligibility.ReversalRequest {
	return eligibility.ReversalRequest{
		Name:           r.Name,
		CustomerTZ:     r.CustomerTZ,
		SignupDate:     r.SignupDate,
		Source:         r.Source,
		InvestmentDate: r.InvestmentDate,
		InvestmentTime: r.InvestmentTime,
		RequestDate:    r.RequestDate,
		RequestTime:    r.RequestTime,
	}
}

func toEvaluationDTO(ev *eligibility.Evaluation) EvaluationDTO {
	return EvaluationDTO{
		Eligible:     ev.Eligible,
		NewTOS:       ev.NewTOS,
		WindowHours:  ev.Window.Value.String(),
		InvestedAt:   ev.InvestedAt.Format(time.RFC3339),
		EffectiveAt:  ev.EffectiveAt.Format(time.RFC3339),
		ElapsedHours: ev.Elapsed.Value.StringFixed(2),
	}
}
