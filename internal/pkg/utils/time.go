package utils

import "time"

// AgeFromBirthDate computes a patient's age in whole years as of now. The
// backend sends birth dates as "2006-01-02"; an unparseable date yields -1.
func AgeFromBirthDate(birthDate string, now time.Time) int {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return -1
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return -1
	}
	return age
}
