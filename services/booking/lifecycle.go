package booking

import (
	"time"

	"travelmate/database/repository"
	"travelmate/models"

	"go.uber.org/zap"
)

// Lifecycle drives a booking through its status state machine. Transitions
// return a new Booking value; the input is never mutated, so a failed
// transition leaves the caller holding the previous, still-valid state.
type Lifecycle struct {
	Repo   repository.BookingRepository
	Logger *zap.Logger
}

func NewLifecycle(repo repository.BookingRepository, logger *zap.Logger) *Lifecycle {
	return &Lifecycle{Repo: repo, Logger: logger}
}

// Transition moves the booking to target, applying side effects (timestamps,
// persistence). A terminal source yields a TerminalStateError and a
// disallowed edge yields a TransitionError; both return the booking
// unchanged. A persistence failure returns the transitioned booking together
// with a PersistenceError: the status change itself is not rolled back.
func (l *Lifecycle) Transition(b models.Booking, target models.BookingStatus) (models.Booking, error) {
	if b.Status.IsTerminal() {
		return b, &TerminalStateError{BookingID: b.BookingID, Status: string(b.Status)}
	}
	if !b.Status.CanTransitionTo(target) {
		return b, &TransitionError{BookingID: b.BookingID, From: string(b.Status), To: string(target)}
	}

	now := time.Now()
	updated := b
	updated.Status = target

	switch target {
	case models.StatusConfirmed:
		updated.ConfirmedAt = &now
	case models.StatusCancelled:
		updated.CancelledAt = &now
	}

	l.Logger.Info("booking transitioned",
		zap.String("bookingId", updated.BookingID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(target)),
	)

	if err := l.persist(updated); err != nil {
		l.Logger.Error("failed to persist booking after transition",
			zap.String("bookingId", updated.BookingID), zap.Error(err))
		return updated, &PersistenceError{BookingID: updated.BookingID, Err: err}
	}
	return updated, nil
}

// persist writes the full booking with a flattened breakdown copy for human
// inspection. The breakdown remains derived data; loaders recompute from
// PriceInputs when they need authoritative numbers.
func (l *Lifecycle) persist(b models.Booking) error {
	if l.Repo == nil {
		return nil
	}
	breakdown := ComputeBreakdown(b)
	record := models.BookingRecord{
		Booking:      b,
		Subtotal:     breakdown.Subtotal,
		TaxesAndFees: breakdown.TaxesAndFees,
		Discount:     breakdown.Discount,
		Total:        breakdown.Total,
		UnitLabel:    breakdown.UnitLabel,
	}
	return l.Repo.Save(&record)
}
