package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	UserID                 uint       `json:"user_id" gorm:"unique;not null"`
	User                   User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DateOfBirth            *time.Time `json:"date_of_birth"`
	Gender                 string     `json:"gender" gorm:"size:10"`
	BloodGroup             string     `json:"blood_group" gorm:"size:5"`
	Address                string     `json:"address"`
	PhoneNumber            string     `json:"phone_number" gorm:"size:20"`
	EmergencyContactName   string     `json:"emergency_contact_name" gorm:"size:100"`
	EmergencyContactNumber string     `json:"emergency_contact_number" gorm:"size:20"`
	Allergies              string     `json:"allergies"`
	ChronicDiseases        string     `json:"chronic_diseases"`
	CurrentMedications     string     `json:"current_medications"`
	InsuranceProvider      string     `json:"insurance_provider" gorm:"size:100"`
	InsuranceNumber        string     `json:"insurance_number" gorm:"size:50"`
}
