package shared

import "math"

// Percent returns round(part / total * 100), or 0 when total is zero
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
