package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		name       string
		minorUnits int64
		expected   string
	}{
		{"zero", 0, "RM 0.00"},
		{"small", 950, "RM 9.50"},
		{"thousands grouped", 125050, "RM 1,250.50"},
		{"millions grouped", 123456789, "RM 1,234,567.89"},
		{"negative", -950, "-RM 9.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatMoney(tc.minorUnits))
		})
	}
}

func TestFormatDisplayDate(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"iso", "2026-09-12", "12 Sep 2026"},
		{"slash dmy", "25/12/2026", "25 Dec 2026"},
		{"slash ymd", "2026/01/05", "05 Jan 2026"},
		{"dash dmy", "03-04-2026", "03 Apr 2026"},
		{"long form", "2 January 2026", "02 Jan 2026"},
		{"us form", "Jan 2, 2026", "02 Jan 2026"},
		{"unparseable passes through", "sometime next week", "sometime next week"},
		{"empty passes through", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatDisplayDate(tc.input))
		})
	}
}

func TestTitleCaseWords(t *testing.T) {
	assert.Equal(t, "Car Rental", TitleCaseWords("car_rental"))
	assert.Equal(t, "Hotel", TitleCaseWords("hotel"))
	assert.Equal(t, "Mobile Wallet", TitleCaseWords("mobile wallet"))
}
