package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTempPassword returns a 16-character hex password for
// admin-created accounts
func GenerateTempPassword() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(buf)
}
