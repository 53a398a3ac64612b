package models

import (
	"gorm.io/gorm"
)

type Department struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:100;unique;not null"`
	Description string `json:"description"`
	Floor       int    `json:"floor"`
	PhoneNumber string `json:"phone_number" gorm:"size:20"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
