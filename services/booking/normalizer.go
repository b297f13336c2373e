package booking

import (
	"fmt"
	"strings"
	"time"

	"travelmate/config"
	"travelmate/models"
	"travelmate/utils"

	"github.com/spf13/cast"
)

// Field priority lists. Type-specific candidates are tried before the generic
// fallbacks so a payload carrying both (e.g. a car payload with a stale
// "name") resolves to the field its own producer meant.

var itemNameCandidates = map[models.BookingType][]string{
	models.TypeAttraction: {"attraction_name", "ticket_name", "activity_name"},
	models.TypeHotel:      {"hotel_name", "property_name", "room_name"},
	models.TypeFlight:     {"flight_number", "flight_name", "airline"},
	models.TypeCarRental:  {"car_model", "car_name", "vehicle_model", "vehicle_name"},
}

var genericNameCandidates = []string{
	"attraction_name", "hotel_name", "flight_number", "car_model", "car_name", "item_name", "name",
}

var unitPriceCandidates = map[models.BookingType][]string{
	models.TypeAttraction: {"ticket_price", "price_per_ticket", "price", "unit_price"},
	models.TypeHotel:      {"room_rate", "rate_per_night", "price_per_night", "price", "unit_price"},
	models.TypeFlight:     {"unit_price_per_passenger", "fare", "base_fare", "price", "unit_price"},
	models.TypeCarRental:  {"daily_rate", "rate_per_day", "price_per_day", "price", "unit_price"},
}

var genericPriceCandidates = []string{"price", "unit_price", "amount"}

// Billing quantity is per ticket, per night, per passenger, per day. Hotels
// and car rentals bill on the stay length, not the room or vehicle count.
var quantityCandidates = map[models.BookingType][]string{
	models.TypeAttraction: {"ticket_count", "tickets", "quantity", "qty"},
	models.TypeHotel:      {"nights", "night_count", "quantity", "qty"},
	models.TypeFlight:     {"passenger_count", "passengers", "quantity", "qty"},
	models.TypeCarRental:  {"rental_days", "days", "quantity", "qty"},
}

var taxFieldNames = []string{"tax", "taxes", "service_fee", "booking_fee"}

var discountCandidates = []string{"discount", "discount_amount", "promo_discount"}

// Normalize converts a raw producer payload into a canonical Booking. It
// never fails: every unresolvable or malformed field falls back to its
// documented default so the UI can always display something.
func Normalize(raw map[string]any, hint models.BookingType) models.Booking {
	bookingType := Classify(raw, hint)

	b := models.Booking{
		BookingID:   resolveBookingID(raw, bookingType),
		BookingType: bookingType,
		ItemName:    resolveItemName(raw, bookingType),
		Status:      resolveStatus(raw),
		CreatedAt:   time.Now(),
		RawPayload:  raw,
	}

	b.PriceInputs = resolvePriceInputs(raw, bookingType)
	b.DisplayDetails = buildDisplayDetails(raw)
	return b
}

func resolveBookingID(raw map[string]any, t models.BookingType) string {
	if v, ok := raw["booking_id"]; ok {
		id := strings.TrimSpace(cast.ToString(v))
		if id != "" && !strings.EqualFold(id, "n/a") {
			return id
		}
	}
	return t.IDPrefix() + time.Now().Format("20060102150405")
}

func resolveItemName(raw map[string]any, t models.BookingType) string {
	if name := ResolveString(raw, itemNameCandidates[t]...); name != "" {
		return name
	}
	if name := ResolveString(raw, genericNameCandidates...); name != "" {
		return name
	}
	return utils.TitleCaseWords(string(t)) + " Booking"
}

func resolveStatus(raw map[string]any) models.BookingStatus {
	s := models.BookingStatus(strings.ToLower(ResolveString(raw, "status")))
	if s.IsValid() {
		return s
	}
	return models.StatusPending
}

func resolvePriceInputs(raw map[string]any, t models.BookingType) models.PriceInputs {
	inputs := models.PriceInputs{Quantity: 1}

	candidates := append([]string{}, unitPriceCandidates[t]...)
	candidates = append(candidates, genericPriceCandidates...)
	if price, ok := ResolveNumber(raw, candidates...); ok {
		cents := models.CentsFromFloat(price).ClampNonNegative()
		inputs.UnitPrice = &cents
	}

	if qty, ok := ResolveInt(raw, quantityCandidates[t]...); ok && qty >= 1 {
		inputs.Quantity = qty
	}

	// Tax and fee fields are independent charges and are summed, unlike the
	// unit-price candidates where the first match wins.
	inputs.TaxesAndFees = models.CentsFromFloat(ResolveSum(raw, taxFieldNames...)).ClampNonNegative()

	if discount, ok := ResolveNumber(raw, discountCandidates...); ok {
		inputs.Discount = models.CentsFromFloat(discount).ClampNonNegative()
	}

	// A producer-supplied flat total wins over unit math downstream; some
	// producers already did day/night multiplication and discount math, and
	// recomputing would double-apply those adjustments.
	flatField := "total_price"
	if t == models.TypeFlight {
		flatField = "total_amount"
	}
	if total, ok := ResolveNumber(raw, flatField); ok {
		cents := models.CentsFromFloat(total).ClampNonNegative()
		inputs.FlatTotal = &cents
	}

	switch t {
	case models.TypeHotel:
		inputs.UnitCount, _ = ResolveInt(raw, "nights", "night_count")
	case models.TypeCarRental:
		inputs.UnitCount, _ = ResolveInt(raw, "rental_days", "days")
	}

	return inputs
}

type detailKind int

const (
	detailText detailKind = iota
	detailDate
	detailPrice
	detailList
)

type detailField struct {
	key   string
	label string
	kind  detailKind
}

// displayFieldTable is the fixed, ordered set of known payload fields shown
// on the booking summary. Only fields present in the payload are included and
// the result is capped, so ordering doubles as display priority.
var displayFieldTable = []detailField{
	{"attraction_name", "Attraction", detailText},
	{"hotel_name", "Hotel", detailText},
	{"flight_number", "Flight", detailText},
	{"airline", "Airline", detailText},
	{"car_model", "Car Model", detailText},
	{"vehicle_type", "Vehicle Type", detailText},
	{"location", "Location", detailText},
	{"destination", "Destination", detailText},
	{"origin", "Origin", detailText},
	{"departure_city", "Departure City", detailText},
	{"arrival_city", "Arrival City", detailText},
	{"pickup_location", "Pickup Location", detailText},
	{"dropoff_location", "Drop-off Location", detailText},
	{"visit_date", "Visit Date", detailDate},
	{"check_in", "Check-in", detailDate},
	{"check_out", "Check-out", detailDate},
	{"departure_date", "Departure Date", detailDate},
	{"return_date", "Return Date", detailDate},
	{"pickup_date", "Pickup Date", detailDate},
	{"dropoff_date", "Drop-off Date", detailDate},
	{"departure_time", "Departure Time", detailText},
	{"arrival_time", "Arrival Time", detailText},
	{"nights", "Nights", detailText},
	{"rental_days", "Rental Days", detailText},
	{"passenger_count", "Passengers", detailText},
	{"ticket_count", "Tickets", detailText},
	{"room_type", "Room Type", detailText},
	{"room_count", "Rooms", detailText},
	{"seat_class", "Seat Class", detailText},
	{"seat_numbers", "Seats", detailList},
	{"passengers", "Passengers", detailList},
	{"guests", "Guests", detailList},
	{"amenities", "Amenities", detailList},
	{"inclusions", "Inclusions", detailList},
	{"extras", "Extras", detailList},
	{"ticket_price", "Ticket Price", detailPrice},
	{"room_rate", "Room Rate", detailPrice},
	{"daily_rate", "Daily Rate", detailPrice},
	{"insurance_fee", "Insurance", detailPrice},
	{"total_price", "Total", detailPrice},
	{"total_amount", "Total", detailPrice},
}

func buildDisplayDetails(raw map[string]any) []models.DetailEntry {
	maxEntries := config.AppConfig.MaxDisplayDetails
	if maxEntries <= 0 {
		maxEntries = 6
	}

	details := make([]models.DetailEntry, 0, maxEntries)
	for _, field := range displayFieldTable {
		if len(details) >= maxEntries {
			break
		}
		v, ok := raw[field.key]
		if !ok || v == nil {
			continue
		}
		value := renderDetailValue(v, field.kind)
		if value == "" {
			continue
		}
		details = append(details, models.DetailEntry{Label: field.label, Value: value})
	}
	return details
}

func renderDetailValue(v any, kind detailKind) string {
	switch kind {
	case detailDate:
		return utils.FormatDisplayDate(cast.ToString(v))
	case detailPrice:
		if f, ok := coerceNumber(v); ok {
			return utils.FormatMoney(int64(models.CentsFromFloat(f)))
		}
		return strings.TrimSpace(cast.ToString(v))
	case detailList:
		return renderListValue(v)
	default:
		s := strings.TrimSpace(cast.ToString(v))
		if isPlaceholder(s) {
			return ""
		}
		return s
	}
}

func renderListValue(v any) string {
	var items []string
	switch v.(type) {
	case []any, []string:
		items = cast.ToStringSlice(v)
	default:
		// Scalar in a list-typed slot; show it as-is.
		return strings.TrimSpace(cast.ToString(v))
	}
	if len(items) == 0 {
		return ""
	}

	maxItems := config.AppConfig.MaxListPreviewItems
	if maxItems <= 0 {
		maxItems = 3
	}
	if len(items) <= maxItems {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:maxItems], ", "), len(items)-maxItems)
}
