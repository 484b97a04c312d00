package report

// PercentChange implements the period-over-period delta rule shared by every
// report: 0 when there is no previous value to compare against, never a
// division error.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
