package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeFollowUp     AppointmentType = "follow_up"
	TypeEmergency    AppointmentType = "emergency"
	TypeSurgery      AppointmentType = "surgery"
	TypeCheckup      AppointmentType = "checkup"
)

// DefaultDuration is informational only; slot generation always uses the
// fixed 30-minute grid.
const DefaultDuration = 30

type Appointment struct {
	gorm.Model
	PatientID       uint              `json:"patient_id" gorm:"not null"`
	Patient         Patient           `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID        uint              `json:"doctor_id" gorm:"not null"`
	Doctor          Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	DepartmentID    *uint             `json:"department_id"`
	Department      Department        `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"not null"`
	AppointmentTime string            `json:"appointment_time" gorm:"size:5;not null"` // "HH:MM", 24h
	AppointmentType AppointmentType   `json:"appointment_type" gorm:"type:varchar(20);default:'consultation'"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	Duration        int               `json:"duration" gorm:"default:30"` // minutes
	ReasonForVisit  string            `json:"reason_for_visit"`
	Notes           string            `json:"notes"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.AppointmentType == "" {
		a.AppointmentType = TypeConsultation
	}
	if a.Duration == 0 {
		a.Duration = DefaultDuration
	}
	return nil
}

// HoldingStatuses are the statuses that keep a slot occupied. Appointments in
// any other status do not block the slot from being rebooked.
var HoldingStatuses = []AppointmentStatus{StatusScheduled, StatusConfirmed}

// HoldsSlot reports whether an appointment in this status blocks its
// doctor/date/time slot.
func (s AppointmentStatus) HoldsSlot() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// ConflictsWith reports whether this appointment blocks booking the given
// doctor/date/time slot. An appointment whose ID matches a nonzero excludeID
// never conflicts, so a reschedule to its own current slot goes through.
func (a *Appointment) ConflictsWith(doctorID uint, date time.Time, clock string, excludeID uint) bool {
	if !a.Status.HoldsSlot() {
		return false
	}
	if excludeID != 0 && a.ID == excludeID {
		return false
	}
	return a.DoctorID == doctorID && a.AppointmentTime == clock && sameDay(a.AppointmentDate, date)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsValid reports whether s is a known appointment status.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsValid reports whether t is a known appointment type.
func (t AppointmentType) IsValid() bool {
	switch t {
	case TypeConsultation, TypeFollowUp, TypeEmergency, TypeSurgery, TypeCheckup:
		return true
	}
	return false
}

// statusTransitions is the allowed next-state set for each status. Cancelled
// and no-show are reachable from every non-terminal state; nothing leaves a
// terminal state.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// CanTransitionTo reports whether moving from s to next is allowed. Writing
// the status an appointment already holds is always allowed, so repeated
// updates are idempotent.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// UpdateStatus applies the transition table and persists the new status.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("unknown appointment status %q", newStatus)
	}
	if !a.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
	}
	if a.Status == newStatus {
		return nil
	}
	a.Status = newStatus
	return tx.Model(a).Update("status", newStatus).Error
}
