package builder

// validateMin ensures got ≥ min.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "%s must be ≥ %d, got %d", what, min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %f",
			MinProbability, MaxProbability, p)
	}

	return nil
}
