package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+989120000001", "989120000001", "+1 555 000-0000"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}

	// local numbers with a leading zero are not deliverable internationally
	invalid := []string{"", "abc", "09120000001", "+0123", "12345678901234567890"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}
