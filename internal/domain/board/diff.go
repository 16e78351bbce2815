package board

// Diff compares actual staffing against the requirement at one instant.
// Positive means overstaffed, negative understaffed.
func Diff(required, actual int) (int, DiffStatus) {
	diff := actual - required
	switch {
	case diff > 0:
		return diff, StatusOver
	case diff < 0:
		return diff, StatusShort
	default:
		return 0, StatusEven
	}
}
