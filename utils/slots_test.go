package utils

import (
	"reflect"
	"sort"
	"testing"
)

func TestGenerateTimeSlots_FullDayWindow(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "17:00")

	if len(slots) != 16 {
		t.Fatalf("len(slots) = %d, want 16", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("slots[0] = %q, want 09:00", slots[0])
	}
	if slots[1] != "09:30" {
		t.Errorf("slots[1] = %q, want 09:30", slots[1])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Errorf("last slot = %q, want 16:30", slots[len(slots)-1])
	}
	if !sort.StringsAreSorted(slots) {
		t.Errorf("slots are not ascending: %v", slots)
	}
}

func TestGenerateTimeSlots_PartialFirstHour(t *testing.T) {
	// Boundaries before the start minute fall outside the window.
	slots := GenerateTimeSlots("09:15", "11:00")

	want := []string{"09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %v, want %v", slots, want)
	}
}

func TestGenerateTimeSlots_PartialLastHour(t *testing.T) {
	// The window ends mid-hour: the 16:30 boundary is not strictly inside it.
	slots := GenerateTimeSlots("15:00", "16:30")

	want := []string{"15:00", "15:30", "16:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %v, want %v", slots, want)
	}
}

func TestGenerateTimeSlots_MidHourEndKeepsEarlierHours(t *testing.T) {
	// Only boundaries at or past the end minute drop out; every earlier
	// hour stays intact.
	slots := GenerateTimeSlots("09:00", "12:15")

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %v, want %v", slots, want)
	}
}

func TestGenerateTimeSlots_InvalidWindow(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
	}{
		{"empty both", "", ""},
		{"empty from", "", "17:00"},
		{"empty to", "09:00", ""},
		{"garbage", "soon", "later"},
		{"inverted", "17:00", "09:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if slots := GenerateTimeSlots(tc.from, tc.to); len(slots) != 0 {
				t.Errorf("GenerateTimeSlots(%q, %q) = %v, want empty", tc.from, tc.to, slots)
			}
		})
	}
}

func TestFilterBookedSlots(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30"}

	free := FilterBookedSlots(slots, []string{"09:30", "10:30"})
	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("free = %v, want %v", free, want)
	}
}

func TestFilterBookedSlots_NothingBooked(t *testing.T) {
	slots := []string{"09:00", "09:30"}

	free := FilterBookedSlots(slots, nil)
	if !reflect.DeepEqual(free, slots) {
		t.Errorf("free = %v, want %v", free, slots)
	}
}

func TestFilterBookedSlots_EmptyGrid(t *testing.T) {
	free := FilterBookedSlots(nil, []string{"09:00"})
	if len(free) != 0 {
		t.Errorf("free = %v, want empty", free)
	}
}
