package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode_Format(t *testing.T) {
	code := GenerateCode(nil)

	assert.Len(t, code, codeLength)
	for _, r := range code {
		assert.Contains(t, string(codeChars), string(r))
	}
}

func TestGenerateCode_AvoidsExisting(t *testing.T) {
	// Seen codes must not be reissued while they are live.
	existing := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateCode(existing)
		assert.False(t, existing[code], "code %s was issued twice", code)
		existing[code] = true
	}
}
