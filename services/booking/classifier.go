package booking

import (
	"strings"

	"travelmate/models"

	"github.com/spf13/cast"
)

// categoryAliases maps loose producer type/category spellings to their
// canonical booking type. Unmapped values fall through to the generic
// attraction type; producer modules are independently authored and
// classification must degrade instead of blocking the flow.
var categoryAliases = map[string]models.BookingType{
	"attraction":  models.TypeAttraction,
	"attractions": models.TypeAttraction,
	"general":     models.TypeAttraction,
	"hotel":       models.TypeHotel,
	"hotels":      models.TypeHotel,
	"room":        models.TypeHotel,
	"flight":      models.TypeFlight,
	"flights":     models.TypeFlight,
	"car":         models.TypeCarRental,
	"cars":        models.TypeCarRental,
	"car_rental":  models.TypeCarRental,
	"vehicle":     models.TypeCarRental,
}

// Classify determines the product type of a raw payload. It never fails: an
// explicit booking_type wins, then a mapped type/category field, then the
// caller's hint, then the attraction default.
func Classify(raw map[string]any, hint models.BookingType) models.BookingType {
	if v, ok := raw["booking_type"]; ok {
		candidate := models.BookingType(strings.ToLower(strings.TrimSpace(cast.ToString(v))))
		if candidate.IsValid() {
			return candidate
		}
	}

	for _, key := range []string{"type", "category"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		s := strings.ToLower(strings.TrimSpace(cast.ToString(v)))
		if s == "" {
			continue
		}
		if mapped, ok := categoryAliases[s]; ok {
			return mapped
		}
		// A present but unmapped category is still a classification signal;
		// it lands on the generic type rather than consulting the hint.
		return models.TypeAttraction
	}

	if hint.IsValid() {
		return hint
	}
	return models.TypeAttraction
}
