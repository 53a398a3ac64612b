package models

import (
	"gorm.io/gorm"
)

// Doctor is the clinical profile attached to a user account with the doctor
// role. AvailableFrom/AvailableTo define the daily working window as "HH:MM"
// strings; doctors without both configured have no bookable slots.
type Doctor struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"unique;not null"`
	User            User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Specialization  string     `json:"specialization" gorm:"size:100;not null"`
	Qualification   string     `json:"qualification"`
	Experience      int        `json:"experience"` // years
	DepartmentID    *uint      `json:"department_id"`
	Department      Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	LicenseNumber   string     `json:"license_number" gorm:"size:50;unique"`
	ConsultationFee float64    `json:"consultation_fee"`
	Bio             string     `json:"bio"`
	ImageURL        string     `json:"image_url"`
	AvailableFrom   *string    `json:"available_from" gorm:"size:5"` // e.g. "09:00"
	AvailableTo     *string    `json:"available_to" gorm:"size:5"`   // e.g. "17:00"
	IsActive        bool       `json:"is_active" gorm:"default:true"`
}

// HasWorkingWindow reports whether the doctor has both ends of the daily
// availability window configured.
func (d *Doctor) HasWorkingWindow() bool {
	return d.AvailableFrom != nil && *d.AvailableFrom != "" &&
		d.AvailableTo != nil && *d.AvailableTo != ""
}
