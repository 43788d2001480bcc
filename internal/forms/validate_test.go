package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("admin@techconnect.com"))
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("  demo@techconnect.com  "))

	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("admin"))
	assert.False(t, ValidEmail("admin@techconnect"))
	assert.False(t, ValidEmail("admin techconnect@example.com"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("admin@.com x"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("admin123"))
	assert.True(t, ValidPassword("123456"))
	assert.False(t, ValidPassword("12345"))
	assert.False(t, ValidPassword(""))
}

func TestValidCardNumber(t *testing.T) {
	// 13-19 hane arası tüm uzunluklar kabul edilmeli
	for n := 13; n <= 19; n++ {
		assert.True(t, ValidCardNumber(strings.Repeat("4", n)), "length %d", n)
	}
	assert.True(t, ValidCardNumber("4111 1111 1111 1111"))

	assert.False(t, ValidCardNumber(strings.Repeat("4", 12)))
	assert.False(t, ValidCardNumber(strings.Repeat("4", 20)))
	assert.False(t, ValidCardNumber("4111a111111111111"))
	assert.False(t, ValidCardNumber(""))
}

func TestValidExpiry(t *testing.T) {
	assert.True(t, ValidExpiry("01/25"))
	assert.True(t, ValidExpiry("12/99"))

	assert.False(t, ValidExpiry("13/25"))
	assert.False(t, ValidExpiry("00/25"))
	assert.False(t, ValidExpiry("1/25"))
	assert.False(t, ValidExpiry("12/5"))
	assert.False(t, ValidExpiry("12-25"))
	assert.False(t, ValidExpiry(""))
}

func TestValidCVV(t *testing.T) {
	assert.True(t, ValidCVV("123"))
	assert.True(t, ValidCVV("1234"))
	assert.False(t, ValidCVV("12"))
	assert.False(t, ValidCVV("12345"))
	assert.False(t, ValidCVV("12a"))
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check("email", "demo@techconnect.com"))
	require.NoError(t, Check("unknownField", "anything"))

	err := Check("expiry", "13/25")
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "expiry", verr.Field)
	assert.Contains(t, verr.Message, "MM/YY")
}
