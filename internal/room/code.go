package room

import (
	"math/rand"
)

const codeLength = 6
const maxRetries = 100

var codeChars = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateCode creates a random 6-character uppercase alphanumeric room code.
// It checks against existing codes to avoid duplicates.
func GenerateCode(existing map[string]bool) string {
	for i := 0; i < maxRetries; i++ {
		code := randomCode()
		if !existing[code] {
			return code
		}
	}
	// Fallback: extremely unlikely with 36^6 combinations
	return randomCode()
}

func randomCode() string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = codeChars[rand.Intn(len(codeChars))]
	}
	return string(b)
}
