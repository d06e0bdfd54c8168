package calendar

import "time"

// Season is one of the four fixed calendar buckets used by seasonal
// schedules. The mapping is month-based and hemisphere-agnostic.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// Seasons returns all seasons in canonical display order.
func Seasons() []Season {
	return []Season{Spring, Summer, Autumn, Winter}
}

// IsValidSeason reports whether s names a known season.
func IsValidSeason(s Season) bool {
	switch s {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

// SeasonIndex returns the canonical sort position of a season
// (spring first, winter last). Unknown seasons sort last.
func SeasonIndex(s Season) int {
	for i, known := range Seasons() {
		if s == known {
			return i
		}
	}
	return len(Seasons())
}

// SeasonOf maps a calendar day to its season:
// March-May spring, June-August summer, September-November autumn,
// December-February winter.
func SeasonOf(d Date) Season {
	switch d.Month() {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Autumn
	default:
		return Winter
	}
}
