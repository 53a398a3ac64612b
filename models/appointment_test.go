package models

import (
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestCanTransitionTo_HappyPath(t *testing.T) {
	steps := []struct {
		from, to AppointmentStatus
	}{
		{StatusScheduled, StatusConfirmed},
		{StatusConfirmed, StatusInProgress},
		{StatusInProgress, StatusCompleted},
	}
	for _, s := range steps {
		if !s.from.CanTransitionTo(s.to) {
			t.Errorf("%s -> %s = false, want true", s.from, s.to)
		}
	}
}

func TestCanTransitionTo_TerminalDeviations(t *testing.T) {
	// Cancelled and no-show are reachable from every non-terminal state.
	for _, from := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusInProgress} {
		for _, to := range []AppointmentStatus{StatusCancelled, StatusNoShow} {
			if !from.CanTransitionTo(to) {
				t.Errorf("%s -> %s = false, want true", from, to)
			}
		}
	}
}

func TestCanTransitionTo_TerminalStatesAreFinal(t *testing.T) {
	terminals := []AppointmentStatus{StatusCompleted, StatusCancelled, StatusNoShow}
	targets := []AppointmentStatus{
		StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	}
	for _, from := range terminals {
		for _, to := range targets {
			got := from.CanTransitionTo(to)
			want := from == to // only the idempotent self-write is allowed
			if got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionTo_NoSkippingAhead(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
	}{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusScheduled},
		{StatusInProgress, StatusScheduled},
	}
	for _, tc := range cases {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s = true, want false", tc.from, tc.to)
		}
	}
}

func TestCanTransitionTo_SameStatusIsIdempotent(t *testing.T) {
	all := []AppointmentStatus{
		StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	}
	for _, s := range all {
		if !s.CanTransitionTo(s) {
			t.Errorf("%s -> %s = false, want true", s, s)
		}
	}
}

func TestHoldsSlot(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusScheduled, true},
		{StatusConfirmed, true},
		{StatusInProgress, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}
	for _, tc := range cases {
		if got := tc.status.HoldsSlot(); got != tc.want {
			t.Errorf("%s.HoldsSlot() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestConflictsWith(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := Appointment{
		Model:           gorm.Model{ID: 7},
		DoctorID:        3,
		AppointmentDate: day,
		AppointmentTime: "10:00",
		Status:          StatusScheduled,
	}

	cases := []struct {
		name      string
		doctorID  uint
		date      time.Time
		clock     string
		excludeID uint
		want      bool
	}{
		{"same slot", 3, day, "10:00", 0, true},
		{"own appointment excluded", 3, day, "10:00", 7, false},
		{"other appointment not excluded", 3, day, "10:00", 8, true},
		{"different doctor", 4, day, "10:00", 0, false},
		{"different time", 3, day, "10:30", 0, false},
		{"different date", 3, day.AddDate(0, 0, 1), "10:00", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := existing.ConflictsWith(tc.doctorID, tc.date, tc.clock, tc.excludeID); got != tc.want {
				t.Errorf("ConflictsWith = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConflictsWith_ReleasedStatuses(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, status := range []AppointmentStatus{StatusCancelled, StatusCompleted, StatusNoShow, StatusInProgress} {
		a := Appointment{
			DoctorID:        3,
			AppointmentDate: day,
			AppointmentTime: "10:00",
			Status:          status,
		}
		if a.ConflictsWith(3, day, "10:00", 0) {
			t.Errorf("%s appointment still holds its slot", status)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	if !StatusNoShow.IsValid() {
		t.Error("no_show reported invalid")
	}
	if AppointmentStatus("archived").IsValid() {
		t.Error("archived reported valid")
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, ty := range []AppointmentType{TypeConsultation, TypeFollowUp, TypeEmergency, TypeSurgery, TypeCheckup} {
		if !ty.IsValid() {
			t.Errorf("%s reported invalid", ty)
		}
	}
	if AppointmentType("house_call").IsValid() {
		t.Error("house_call reported valid")
	}
}
