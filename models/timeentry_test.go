package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEntry(t *testing.T) TimeEntry {
	return TimeEntry{
		ClientID:   "c1",
		Project:    "Website",
		Date:       "2026-03-01",
		StartTime:  "09:00",
		EndTime:    "12:30",
		HourlyRate: d(t, "80"),
		Billable:   true,
	}
}

func TestTimeEntryValidate(t *testing.T) {
	t.Run("derives duration and amount", func(t *testing.T) {
		e := validEntry(t)
		assert.Empty(t, e.Validate())
		assert.Equal(t, 210, e.DurationMinutes)
		assert.Equal(t, "280.00", e.Amount.StringFixed(2))
	})

	t.Run("non-billable amount is zero", func(t *testing.T) {
		e := validEntry(t)
		e.Billable = false
		assert.Empty(t, e.Validate())
		assert.Equal(t, 210, e.DurationMinutes)
		assert.True(t, e.Amount.IsZero())
	})

	t.Run("amount rounds to cents", func(t *testing.T) {
		e := validEntry(t)
		e.StartTime = "09:00"
		e.EndTime = "09:50"
		e.HourlyRate = d(t, "85")
		assert.Empty(t, e.Validate())
		// 85 * 50/60 = 70.8333...
		assert.Equal(t, "70.83", e.Amount.StringFixed(2))
	})

	t.Run("end before start rejected", func(t *testing.T) {
		e := validEntry(t)
		e.EndTime = "08:00"
		assert.Equal(t, "endTime must be after startTime", e.Validate())
	})

	t.Run("zero duration rejected", func(t *testing.T) {
		e := validEntry(t)
		e.EndTime = e.StartTime
		assert.Equal(t, "endTime must be after startTime", e.Validate())
	})

	t.Run("malformed clock rejected", func(t *testing.T) {
		e := validEntry(t)
		e.StartTime = "9am"
		assert.Equal(t, "startTime must be in HH:MM format", e.Validate())

		e = validEntry(t)
		e.EndTime = "25:00"
		assert.Equal(t, "endTime must be in HH:MM format", e.Validate())
	})

	t.Run("missing client rejected", func(t *testing.T) {
		e := validEntry(t)
		e.ClientID = ""
		assert.Equal(t, "clientId is required", e.Validate())
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		e := validEntry(t)
		e.HourlyRate = d(t, "-5")
		assert.Equal(t, "hourlyRate must be non-negative", e.Validate())
	})
}
