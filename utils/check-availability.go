package utils

import (
	"time"

	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"gorm.io/gorm"
)

// CheckSlotAvailable reports whether a doctor's slot on the given date and
// time is free of scheduled/confirmed appointments. excludeID, when nonzero,
// removes that appointment from the conflict set so a reschedule never
// conflicts with itself.
func CheckSlotAvailable(tx *gorm.DB, doctorID uint, date time.Time, clock string, excludeID uint) (bool, error) {
	if tx == nil {
		tx = db.DB
	}

	var held []models.Appointment
	err := tx.
		Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ?",
			doctorID, NormalizeDate(date), clock).
		Where("status IN ?", models.HoldingStatuses).
		Find(&held).Error
	if err != nil {
		return false, err
	}

	for i := range held {
		if held[i].ConflictsWith(doctorID, date, clock, excludeID) {
			return false, nil
		}
	}
	return true, nil
}

// BookedTimes returns the "HH:MM" values held by scheduled/confirmed
// appointments for the doctor on the given date.
func BookedTimes(doctorID uint, date time.Time) ([]string, error) {
	var times []string
	err := db.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ?", doctorID, NormalizeDate(date)).
		Where("status IN ?", models.HoldingStatuses).
		Pluck("appointment_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}
