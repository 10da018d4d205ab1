package eligibility

import "time"

// EffectiveRequestTime resolves the instant used as the right-hand
// bound of the eligibility comparison, normalized to the operating
// timezone.
//
// Channel policy comes from the window table. A channel that rolls
// forward is staffed: a request received outside business hours is
// deemed received at the next business-day opening. Other channels
// accept requests at any hour, so the parsed instant stands as-is. A
// channel missing from the table is a classification failure.
func (e *Evaluator) EffectiveRequestTime(req ReversalRequest) (time.Time, error) {
	at, err := e.parseLocalDateTime(req.CustomerTZ, "requestDate+requestTime", req.RequestDate, req.RequestTime)
	if err != nil {
		return time.Time{}, err
	}
	at = at.In(e.operating)

	w, ok := e.cfg.Windows[Source(req.Source)]
	if !ok {
		return time.Time{}, &UnknownSourceError{Label: req.Source}
	}
	if !w.RollsForward || !e.IsOutOfHours(at) {
		return at, nil
	}
	return e.NextOpening(at)
}
