package models

import (
	"time"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Email             string    `json:"email" gorm:"unique"`
	Password          string    `json:"password,omitempty"`
	Role              Role      `json:"role" gorm:"type:varchar(20);default:'patient'"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	IsVerified        bool      `json:"is_verified"`
	ResetOTP          string    `json:"-"`
	ResetOTPExpiresAt time.Time `json:"-"`
	ResetToken        string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CanResetPassword reports whether the supplied credential authorizes a
// password reset. Either the emailed OTP or the reset-link token is accepted;
// both expire together and are cleared once used.
func (u *User) CanResetPassword(otp, token string, now time.Time) bool {
	if now.After(u.ResetOTPExpiresAt) {
		return false
	}
	if otp != "" && u.ResetOTP != "" && otp == u.ResetOTP {
		return true
	}
	if token != "" && u.ResetToken != "" && token == u.ResetToken {
		return true
	}
	return false
}
