package models

import "time"

// BookingType identifies which producer module a booking came from.
type BookingType string

const (
	TypeAttraction BookingType = "attraction"
	TypeHotel      BookingType = "hotel"
	TypeFlight     BookingType = "flight"
	TypeCarRental  BookingType = "car_rental"
)

// IsValid reports whether t is one of the four known product types.
func (t BookingType) IsValid() bool {
	switch t {
	case TypeAttraction, TypeHotel, TypeFlight, TypeCarRental:
		return true
	}
	return false
}

// IDPrefix returns the booking-id prefix for the type. The generic attraction
// type keeps the historical "BK" prefix.
func (t BookingType) IDPrefix() string {
	switch t {
	case TypeFlight:
		return "FL"
	case TypeHotel:
		return "HT"
	case TypeCarRental:
		return "CR"
	default:
		return "BK"
	}
}

// PriceInputs holds the raw monetary inputs resolved at normalization time.
// The calculator works exclusively from these; the raw payload is never read
// again once they are filled.
type PriceInputs struct {
	UnitPrice    *Cents `json:"unitPrice,omitempty"` // nil when no candidate field resolved
	Quantity     int    `json:"quantity"`            // always >= 1
	TaxesAndFees Cents  `json:"taxesAndFees"`
	Discount     Cents  `json:"discount"`

	// FlatTotal is a producer-supplied authoritative total (total_amount for
	// flights, total_price otherwise). When present and non-zero it wins over
	// unitPrice * quantity.
	FlatTotal *Cents `json:"flatTotal,omitempty"`

	// UnitCount is the nights/days figure used to pluralize the unit label.
	UnitCount int `json:"unitCount,omitempty"`
}

// DetailEntry is one (label, value) pair shown on the booking summary.
// Display only; never authoritative.
type DetailEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CustomerInfo is collected from the user before payment.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is the canonical, type-tagged record describing one reservation
// across any of the four product types. Produced only by the normalizer;
// downstream stages switch on BookingType instead of re-deriving it from
// field presence.
type Booking struct {
	BookingID   string        `json:"bookingId"`
	BookingType BookingType   `json:"bookingType"`
	ItemName    string        `json:"itemName"`
	Status      BookingStatus `json:"status"`

	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	PriceInputs    PriceInputs   `json:"priceInputs"`
	DisplayDetails []DetailEntry `json:"displayDetails,omitempty"`

	Customer *CustomerInfo `json:"customer,omitempty"`

	PaymentConfirmationID string `json:"paymentConfirmationId,omitempty"`

	// RawPayload is retained for traceability only.
	RawPayload map[string]any `json:"rawPayload,omitempty"`
}
