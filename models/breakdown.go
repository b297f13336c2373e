package models

// PriceBreakdown is the derived set of line items shown to the user before
// payment. Recomputed on demand from Booking.PriceInputs; never treated as a
// source of truth.
type PriceBreakdown struct {
	UnitPrice    *Cents `json:"unitPrice,omitempty"`
	Quantity     int    `json:"quantity"`
	Subtotal     *Cents `json:"subtotal,omitempty"` // nil when unit price is unknown
	TaxesAndFees Cents  `json:"taxesAndFees"`
	Discount     Cents  `json:"discount"`
	Total        Cents  `json:"total"`

	// UnitLabel is the type-specific quantity label ("Passenger", "Nights", ...).
	UnitLabel string `json:"unitLabel"`

	// FromFlatTotal marks a total taken directly from the producer payload
	// rather than computed from the line items.
	FromFlatTotal bool `json:"fromFlatTotal,omitempty"`
}
