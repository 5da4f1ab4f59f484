package util

// CalculateAverage returns the mean of the map values, 0 for an empty map.
func CalculateAverage(times map[string]int) float64 {
	if len(times) == 0 {
		return 0
	}
	var sum int
	for _, t := range times {
		sum += t
	}
	return float64(sum) / float64(len(times))
}

// Percentage returns 100 * part / whole, 0 when whole is 0.
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
