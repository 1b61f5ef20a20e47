package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{1234567, "1 234 567"},
		{-12345, "-12 345"},
		{1234.6, "1 235"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupThousands(tt.in))
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1 234 ₽", FormatMoney(1234.3))
	assert.Equal(t, "-500 ₽", FormatMoney(-500))
}

func TestFormatMoney2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.56, "1 234.56 ₽"},
		{1234.5, "1 234.50 ₽"},
		{0, "0.00 ₽"},
		{1.999, "2.00 ₽"},
		{-42.1, "-42.10 ₽"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney2(tt.in))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "привет", Truncate("привет", 10))
	assert.Equal(t, "при", Truncate("привет", 3))
	assert.Equal(t, "", Truncate("", 5))
}

func TestParseCommandDate(t *testing.T) {
	date, err := ParseCommandDate("28.02.2025")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-28", date.Format("2006-01-02"))

	_, err = ParseCommandDate("2025-02-28")
	assert.Error(t, err)
}
