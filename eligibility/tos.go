package eligibility

// IsNewTOS reports whether the customer is governed by the current
// terms of service. The signup date is parsed at local midnight in the
// customer's zone and compared as an absolute instant against the
// epoch, so customers in different zones are measured against the same
// moment. Strictly before the epoch is the old cohort; at or after is
// the new one.
func (e *Evaluator) IsNewTOS(req ReversalRequest) (bool, error) {
	signedUp, err := e.parseLocalDate(req.CustomerTZ, "signupDate", req.SignupDate)
	if err != nil {
		return false, err
	}
	return !signedUp.Before(e.epoch), nil
}
