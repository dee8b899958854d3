package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	for _, ch := range otp {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestIsValidCurrency(t *testing.T) {
	valid := []float64{0.01, 1, 10.5, 99.99, 1000000}
	for _, amount := range valid {
		assert.True(t, IsValidCurrency(amount), "expected %v to be valid", amount)
	}

	invalid := []float64{0, -1, -0.01, 10.999, 0.001}
	for _, amount := range invalid {
		assert.False(t, IsValidCurrency(amount), "expected %v to be invalid", amount)
	}
}
