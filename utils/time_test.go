package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in        string
		hour, min int
		wantErr   bool
	}{
		{"09:00", 9, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"16:30", 16, 30, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"-1:00", 0, 0, true},
		{"1200", 0, 0, true},
		{"12:00:00", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tc := range cases {
		hour, min, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) err = nil, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) err = %v", tc.in, err)
			continue
		}
		if hour != tc.hour || min != tc.min {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tc.in, hour, min, tc.hour, tc.min)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9, 0); got != "09:00" {
		t.Errorf("FormatClock(9, 0) = %q, want 09:00", got)
	}
	if got := FormatClock(16, 30); got != "16:30" {
		t.Errorf("FormatClock(16, 30) = %q, want 16:30", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate err = %v", err)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Error("ParseDate(15/03/2026) err = nil, want error")
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2026, 3, 15, 14, 45, 12, 999, time.UTC)
	got := NormalizeDate(in)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeDate = %v, want %v", got, want)
	}
}

func TestClinicLocation(t *testing.T) {
	t.Setenv("CLINIC_TIMEZONE", "Asia/Kolkata")
	if got := ClinicLocation(); got.String() != "Asia/Kolkata" {
		t.Errorf("ClinicLocation() = %v, want Asia/Kolkata", got)
	}
}

func TestClinicLocation_Unset(t *testing.T) {
	t.Setenv("CLINIC_TIMEZONE", "")
	if got := ClinicLocation(); got != time.UTC {
		t.Errorf("ClinicLocation() = %v, want UTC", got)
	}
}

func TestClinicLocation_Invalid(t *testing.T) {
	t.Setenv("CLINIC_TIMEZONE", "Mars/Olympus")
	if got := ClinicLocation(); got != time.UTC {
		t.Errorf("ClinicLocation() = %v, want UTC", got)
	}
}
