package booking

import "travelmate/models"

// ComputeBreakdown derives the price breakdown from a normalized booking.
// Pure function of PriceInputs and the type tag; the raw payload is never
// consulted here.
//
// A producer-supplied flat total wins when present and non-zero. Some
// producers already performed day/night multiplication and discount math
// upstream, so recomputing from the unit price would double-apply those
// adjustments. The computed subtotal is still carried for display when unit
// price and quantity are both known.
func ComputeBreakdown(b models.Booking) models.PriceBreakdown {
	in := b.PriceInputs

	breakdown := models.PriceBreakdown{
		UnitPrice:    in.UnitPrice,
		Quantity:     in.Quantity,
		TaxesAndFees: in.TaxesAndFees,
		Discount:     in.Discount,
		UnitLabel:    unitLabel(b.BookingType, in),
	}

	if in.UnitPrice != nil {
		subtotal := *in.UnitPrice * models.Cents(in.Quantity)
		breakdown.Subtotal = &subtotal
	}

	if in.FlatTotal != nil && *in.FlatTotal != 0 {
		breakdown.Total = *in.FlatTotal
		breakdown.FromFlatTotal = true
	} else if breakdown.Subtotal != nil {
		breakdown.Total = (*breakdown.Subtotal + in.TaxesAndFees - in.Discount).ClampNonNegative()
	}

	return breakdown
}

func unitLabel(t models.BookingType, in models.PriceInputs) string {
	switch t {
	case models.TypeFlight:
		return "Passenger"
	case models.TypeHotel:
		return pluralize("Night", in.UnitCount)
	case models.TypeCarRental:
		return pluralize("Day", in.UnitCount)
	case models.TypeAttraction:
		return "Ticket"
	default:
		return "Unit"
	}
}

func pluralize(label string, count int) string {
	if count > 1 {
		return label + "s"
	}
	return label
}
