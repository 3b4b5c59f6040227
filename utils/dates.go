// utils/dates.go
package utils

import "time"

// BirthDateFormat is the wire format for customer birth dates.
const BirthDateFormat = "2006-01-02"

// Age returns the number of full calendar years between birth and now,
// accounting for a birthday not yet reached this year.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
