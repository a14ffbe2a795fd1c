package models

// SlotCalendar maps a calendar day ("2006-01-02") to the time labels ("15:04")
// already booked on that day. It is embedded in the Doctor document as
// slotsBooked and must only be mutated durably through the scheduler
// repository's conditional updates; these helpers exist for read-side
// queries and in-memory fakes.
type SlotCalendar map[string][]string

// Booked reports whether slotTime is already taken on date.
func (c SlotCalendar) Booked(date, slotTime string) bool {
	for _, t := range c[date] {
		if t == slotTime {
			return true
		}
	}
	return false
}

// Book inserts slotTime into the set for date, creating the day entry if
// absent. Duplicate inserts are ignored; rejecting a double booking is the
// reservation engine's job, not the calendar's.
func (c SlotCalendar) Book(date, slotTime string) {
	if c.Booked(date, slotTime) {
		return
	}
	c[date] = append(c[date], slotTime)
}

// Release removes slotTime from the set for date. Releasing a slot that is
// not booked is a no-op, not an error.
func (c SlotCalendar) Release(date, slotTime string) {
	times := c[date]
	for i, t := range times {
		if t == slotTime {
			c[date] = append(times[:i:i], times[i+1:]...)
			return
		}
	}
}

// Times returns the booked time labels for date.
func (c SlotCalendar) Times(date string) []string {
	return c[date]
}

// Clone returns a deep copy of the calendar.
func (c SlotCalendar) Clone() SlotCalendar {
	out := make(SlotCalendar, len(c))
	for date, times := range c {
		out[date] = append([]string(nil), times...)
	}
	return out
}
