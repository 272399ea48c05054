package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "5551234567", NormalizePhoneNumber("(555) 123-4567"))
	assert.Equal(t, "5551234567", NormalizePhoneNumber("555.123.4567"))
	assert.Equal(t, "5551234567", NormalizePhoneNumber("5551234567"))
	assert.Equal(t, "15551234567", NormalizePhoneNumber("+1 555 123 4567"))
	assert.Equal(t, "", NormalizePhoneNumber("abc"))
	assert.Equal(t, "", NormalizePhoneNumber(""))
}
