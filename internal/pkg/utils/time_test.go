package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	t.Run("BirthdayAlreadyPassedThisYear", func(t *testing.T) {
		assert.Equal(t, 65, AgeFromBirthDate("1961-04-18", now))
	})

	t.Run("BirthdayLaterThisYear", func(t *testing.T) {
		assert.Equal(t, 38, AgeFromBirthDate("1987-09-02", now))
	})

	t.Run("BirthdayToday", func(t *testing.T) {
		assert.Equal(t, 26, AgeFromBirthDate("2000-08-31", now))
	})

	t.Run("UnparseableDate", func(t *testing.T) {
		assert.Equal(t, -1, AgeFromBirthDate("31/08/2000", now))
		assert.Equal(t, -1, AgeFromBirthDate("", now))
	})

	t.Run("FutureBirthDate", func(t *testing.T) {
		assert.Equal(t, -1, AgeFromBirthDate("2030-01-01", now))
	})
}
