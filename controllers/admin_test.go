package controllers

import (
	"reflect"
	"testing"
	"time"

	"github.com/medicore/hospital-backend/models"
)

func TestCollectProfileUserIDs(t *testing.T) {
	appointments := []models.Appointment{
		{Patient: models.Patient{UserID: 4}, Doctor: models.Doctor{UserID: 7}},
		{Patient: models.Patient{UserID: 5}, Doctor: models.Doctor{UserID: 7}}, // shared doctor
		{Patient: models.Patient{UserID: 4}, Doctor: models.Doctor{UserID: 9}}, // repeat patient
	}

	ids := CollectProfileUserIDs(appointments)
	want := []uint{4, 7, 5, 9}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestCollectProfileUserIDs_SkipsUnloadedProfiles(t *testing.T) {
	appointments := []models.Appointment{
		{Patient: models.Patient{UserID: 0}, Doctor: models.Doctor{UserID: 3}},
	}

	ids := CollectProfileUserIDs(appointments)
	want := []uint{3}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestBuildRecentAppointmentRows(t *testing.T) {
	date := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		{
			Patient:         models.Patient{UserID: 4},
			Doctor:          models.Doctor{UserID: 7},
			Department:      models.Department{Name: "Cardiology"},
			AppointmentDate: date,
			AppointmentTime: "10:30",
			Status:          models.StatusConfirmed,
		},
	}
	appointments[0].ID = 12
	appointments[0].Department.ID = 2

	users := []models.User{
		{ID: 4, Name: "Ada Price"},
		{ID: 7, Name: "Grace Okafor"},
	}

	rows := BuildRecentAppointmentRows(appointments, users)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.ID != 12 {
		t.Errorf("row.ID = %d, want 12", row.ID)
	}
	if row.PatientName != "Ada Price" {
		t.Errorf("row.PatientName = %q, want Ada Price", row.PatientName)
	}
	if row.DoctorName != "Grace Okafor" {
		t.Errorf("row.DoctorName = %q, want Grace Okafor", row.DoctorName)
	}
	if row.Department != "Cardiology" {
		t.Errorf("row.Department = %q, want Cardiology", row.Department)
	}
	if row.Time != "10:30" {
		t.Errorf("row.Time = %q, want 10:30", row.Time)
	}
	if row.Status != models.StatusConfirmed {
		t.Errorf("row.Status = %q, want confirmed", row.Status)
	}
}

func TestBuildRecentAppointmentRows_MissingDepartmentAndUser(t *testing.T) {
	appointments := []models.Appointment{
		{
			Patient:         models.Patient{UserID: 4},
			Doctor:          models.Doctor{UserID: 7},
			AppointmentTime: "09:00",
			Status:          models.StatusScheduled,
		},
	}

	rows := BuildRecentAppointmentRows(appointments, nil)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Department != "N/A" {
		t.Errorf("row.Department = %q, want N/A", rows[0].Department)
	}
	if rows[0].PatientName != "" {
		t.Errorf("row.PatientName = %q, want empty", rows[0].PatientName)
	}
}
