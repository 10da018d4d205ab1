// Package dataset ships the static reversal records the display layer
// renders. The records are compiled into the binary; nothing is ever
// written back.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/warp/refund-engine/eligibility"
)

//go:embed reversals.json
var raw []byte

// record mirrors the JSON field names of the feed.
type record struct {
	Name           string `json:"name"`
	CustomerTZ     string `json:"customer_tz"`
	SignupDate     string `json:"signup_date"`
	Source         string `json:"source"`
	InvestmentDate string `json:"investment_date"`
	InvestmentTime string `json:"investment_time"`
	RequestDate    string `json:"request_date"`
	RequestTime    string `json:"request_time"`
}

// Load decodes the embedded reversal records. Records with unknown
// timezones or channels are kept: classifying them is the engine's
// job, not the loader's.
func Load() ([]eligibility.ReversalRequest, error) {
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode embedded reversals: %w", err)
	}

	return lo.Map(records, func(r record, _ int) eligibility.ReversalRequest {
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
	}), nil
}
