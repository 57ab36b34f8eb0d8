package utils

import (
	"fmt"
	"math/rand"
)

// GenerateVerificationCode returns a 6-digit numeric code for email
// verification.
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
