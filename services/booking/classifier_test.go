package booking

import (
	"testing"

	"travelmate/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		raw      map[string]any
		hint     models.BookingType
		expected models.BookingType
	}{
		{
			name:     "explicit booking_type wins",
			raw:      map[string]any{"booking_type": "flight", "category": "hotel"},
			expected: models.TypeFlight,
		},
		{
			name:     "booking_type trimmed and lowercased",
			raw:      map[string]any{"booking_type": "  Car_Rental "},
			expected: models.TypeCarRental,
		},
		{
			name:     "invalid booking_type falls through to category",
			raw:      map[string]any{"booking_type": "cruise", "category": "hotel"},
			expected: models.TypeHotel,
		},
		{
			name:     "type field mapped through aliases",
			raw:      map[string]any{"type": "car"},
			expected: models.TypeCarRental,
		},
		{
			name:     "general maps to attraction",
			raw:      map[string]any{"category": "general"},
			expected: models.TypeAttraction,
		},
		{
			name:     "unknown category defaults to attraction",
			raw:      map[string]any{"category": "cruise"},
			expected: models.TypeAttraction,
		},
		{
			name:     "hint used when nothing else present",
			raw:      map[string]any{"price": 10},
			hint:     models.TypeFlight,
			expected: models.TypeFlight,
		},
		{
			name:     "invalid hint defaults to attraction",
			raw:      map[string]any{},
			hint:     models.BookingType("boat"),
			expected: models.TypeAttraction,
		},
		{
			name:     "non-string type value is tolerated",
			raw:      map[string]any{"type": 42},
			expected: models.TypeAttraction,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.raw, tc.hint))
		})
	}
}
