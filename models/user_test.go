package models

import (
	"testing"
	"time"
)

func TestCanResetPassword(t *testing.T) {
	now := time.Now()
	user := User{
		ResetOTP:          "482913",
		ResetToken:        "7f4b2c1e-aaaa-bbbb-cccc-1234567890ab",
		ResetOTPExpiresAt: now.Add(10 * time.Minute),
	}

	cases := []struct {
		name  string
		otp   string
		token string
		at    time.Time
		want  bool
	}{
		{"valid otp", "482913", "", now, true},
		{"valid token", "", "7f4b2c1e-aaaa-bbbb-cccc-1234567890ab", now, true},
		{"wrong otp", "000000", "", now, false},
		{"wrong token", "", "not-the-token", now, false},
		{"no credential", "", "", now, false},
		{"expired otp", "482913", "", now.Add(11 * time.Minute), false},
		{"expired token", "", "7f4b2c1e-aaaa-bbbb-cccc-1234567890ab", now.Add(11 * time.Minute), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := user.CanResetPassword(tc.otp, tc.token, tc.at); got != tc.want {
				t.Errorf("CanResetPassword(%q, %q) = %v, want %v", tc.otp, tc.token, got, tc.want)
			}
		})
	}
}

func TestCanResetPassword_NoPendingReset(t *testing.T) {
	// A user who never requested a reset has a zero expiry, which is always
	// in the past.
	var user User

	if user.CanResetPassword("", "", time.Now()) {
		t.Error("CanResetPassword accepted empty credentials on a fresh user")
	}
}
