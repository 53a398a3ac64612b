package utils

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// GenerateOTP returns a 6-digit one-time code for password resets.
func GenerateOTP() string {
	var b [4]byte
	rand.Read(b[:])
	n := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return fmt.Sprintf("%06d", n%1000000)
}

// GenerateToken returns an opaque token for reset links.
func GenerateToken() string {
	return uuid.NewString()
}
