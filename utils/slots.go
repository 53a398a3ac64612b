package utils

// SlotInterval is the fixed booking grid in minutes. Appointment duration is
// informational and never changes the grid.
const SlotInterval = 30

// GenerateTimeSlots enumerates candidate "HH:MM" slots inside the working
// window [from, to). Slots snap to 30-minute boundaries within the hour grid:
// the first hour drops boundaries before the start minute, and the end hour
// drops boundaries at or past the end minute.
// A malformed or missing window yields no slots rather than an error.
func GenerateTimeSlots(from, to string) []string {
	startHour, startMin, err := ParseClock(from)
	if err != nil {
		return nil
	}
	endHour, endMin, err := ParseClock(to)
	if err != nil {
		return nil
	}

	var slots []string
	for hour := startHour; hour <= endHour; hour++ {
		for min := 0; min < 60; min += SlotInterval {
			if hour == startHour && min < startMin {
				continue
			}
			if hour == endHour && min >= endMin {
				continue
			}
			slots = append(slots, FormatClock(hour, min))
		}
	}
	return slots
}

// FilterBookedSlots removes slots whose time is already taken, preserving
// order.
func FilterBookedSlots(slots, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}

	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if !taken[s] {
			free = append(free, s)
		}
	}
	return free
}
