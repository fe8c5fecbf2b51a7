package model

import "math"

// Percentage is the ledger rollup: whole-number rounding of
// 100 × attended / total, and 0 when no sessions exist yet (no classes held
// is neither a division error nor "unknown").
func Percentage(attended, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}
