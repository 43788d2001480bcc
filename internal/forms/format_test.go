package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 11", FormatCardNumber("4111x11"))
	assert.Equal(t, "", FormatCardNumber("abc"))

	// 16 haneden uzun girişler 19 karakterde kesilir
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("41111111111111119999"))
}

func TestFormatCardNumberIdempotent(t *testing.T) {
	inputs := []string{"4111111111111111", "4111 1111 1111 1111", "41 11", "378282246310005"}
	for _, in := range inputs {
		once := FormatCardNumber(in)
		assert.Equal(t, once, FormatCardNumber(once), "input %q", in)
	}
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/", FormatExpiry("12"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/25", FormatExpiry("1225"))
	assert.Equal(t, "12/25", FormatExpiry("12/25"))
	assert.Equal(t, "12/25", FormatExpiry("12a25x"))
}

func TestFormatCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCVV("123"))
	assert.Equal(t, "1234", FormatCVV("12345"))
	assert.Equal(t, "12", FormatCVV("1a2b"))
	assert.Equal(t, "", FormatCVV("abc"))
}
