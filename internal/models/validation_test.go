package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"customer1", "abc123", "SingleAdmin", "aaaaaa", "a1234567890123456789"}
	for _, name := range valid {
		assert.True(t, ValidUsername(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"",
		"abc12",                  // too short
		"a12345678901234567890",  // 21 chars
		"has space1",
		"punct!name",
		"under_score1",
	}
	for _, name := range invalid {
		assert.False(t, ValidUsername(name), "expected %q to be invalid", name)
	}
}

func TestValidPassword(t *testing.T) {
	valid := []string{"adminPass3!", "abc12?", "1a!!!!", "?9zzzzzzzzzzzzzzzzzz"}
	for _, pass := range valid {
		assert.True(t, ValidPassword(pass), "expected %q to be valid", pass)
	}

	invalid := []string{
		"",
		"ab1!",                  // too short
		"abcdef1?abcdef1?abcde", // 21 chars
		"abcdef1",               // no special
		"abcdef!",               // no digit
		"123456!",               // no letter
		"abc12?#",               // '#' not allowed
		"abc 12?",               // space not allowed
	}
	for _, pass := range invalid {
		assert.False(t, ValidPassword(pass), "expected %q to be invalid", pass)
	}
}
