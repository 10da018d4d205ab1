package eligibility

// Resolve maps a customer locale label to its TimezoneProfile. The
// match is exact: no normalization, no case folding, no fallback zone.
func (e *Evaluator) Resolve(label string) (TimezoneProfile, error) {
	profile, ok := e.cfg.Zones[label]
	if !ok {
		return TimezoneProfile{}, &UnknownTimezoneError{Label: label}
	}
	return profile, nil
}
