package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotCalendarBookAndRelease(t *testing.T) {
	cal := SlotCalendar{}

	assert.False(t, cal.Booked("2024-05-01", "10:30"))

	cal.Book("2024-05-01", "10:30")
	assert.True(t, cal.Booked("2024-05-01", "10:30"))
	assert.False(t, cal.Booked("2024-05-01", "11:00"))
	assert.False(t, cal.Booked("2024-05-02", "10:30"))

	// Duplicate booking does not grow the day's set.
	cal.Book("2024-05-01", "10:30")
	assert.Len(t, cal.Times("2024-05-01"), 1)

	cal.Release("2024-05-01", "10:30")
	assert.False(t, cal.Booked("2024-05-01", "10:30"))

	// Releasing an absent slot is a no-op.
	cal.Release("2024-05-01", "10:30")
	cal.Release("2024-09-09", "23:00")
	assert.Empty(t, cal.Times("2024-05-01"))
}

func TestSlotCalendarReleaseKeepsSiblings(t *testing.T) {
	cal := SlotCalendar{}
	cal.Book("2024-05-01", "09:00")
	cal.Book("2024-05-01", "10:30")
	cal.Book("2024-05-01", "14:00")

	cal.Release("2024-05-01", "10:30")
	assert.ElementsMatch(t, []string{"09:00", "14:00"}, cal.Times("2024-05-01"))
}

func TestSlotCalendarClone(t *testing.T) {
	cal := SlotCalendar{}
	cal.Book("2024-05-01", "10:30")

	clone := cal.Clone()
	clone.Book("2024-05-01", "11:00")
	clone.Book("2024-05-02", "09:00")

	assert.Len(t, cal.Times("2024-05-01"), 1)
	assert.Empty(t, cal.Times("2024-05-02"))
	assert.Len(t, clone.Times("2024-05-01"), 2)
}
