package match

import "math"

// Rate converts a matched/total pair into an integer percentage. A zero
// total is defined as 0, never a division error.
func Rate(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}
