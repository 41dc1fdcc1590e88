package util

import "math"

// Percentage 返回 part/total 的整数百分比（四舍五入）
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part) * 100 / float64(total))
}
