package models

// BookingRecord is the shape persisted to disk for a finalized booking: the
// full Booking plus a flattened copy of the breakdown for human inspection.
// The breakdown fields here are informational; readers must recompute from
// PriceInputs when they need authoritative numbers.
type BookingRecord struct {
	Booking

	Subtotal     *Cents `json:"subtotal,omitempty"`
	TaxesAndFees Cents  `json:"taxesAndFeesTotal"`
	Discount     Cents  `json:"discountTotal"`
	Total        Cents  `json:"grandTotal"`
	UnitLabel    string `json:"unitLabel,omitempty"`
}
