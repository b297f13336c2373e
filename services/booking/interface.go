package booking

import (
	"travelmate/database/repository"
	"travelmate/models"

	"go.uber.org/zap"
)

// Engine is the entry point producer modules call. Each producer hands over
// whatever key/value payload it has; the engine owns everything from
// normalization through payment hand-off.
type Engine interface {
	Normalize(raw map[string]any, hint models.BookingType) models.Booking
	Breakdown(b models.Booking) models.PriceBreakdown
	NewPaymentSession(b models.Booking) *PaymentSession
	SavedBookings() ([]models.BookingRecord, error)
}

// DefaultEngine implements Engine.
type DefaultEngine struct {
	Repo      repository.BookingRepository
	Lifecycle *Lifecycle
	Logger    *zap.Logger
}

func NewEngine(repo repository.BookingRepository, logger *zap.Logger) *DefaultEngine {
	return &DefaultEngine{
		Repo:      repo,
		Lifecycle: NewLifecycle(repo, logger),
		Logger:    logger,
	}
}

func (e *DefaultEngine) Normalize(raw map[string]any, hint models.BookingType) models.Booking {
	b := Normalize(raw, hint)
	e.Logger.Debug("normalized booking",
		zap.String("bookingId", b.BookingID),
		zap.String("type", string(b.BookingType)),
		zap.String("item", b.ItemName),
	)
	return b
}

func (e *DefaultEngine) Breakdown(b models.Booking) models.PriceBreakdown {
	return ComputeBreakdown(b)
}

func (e *DefaultEngine) NewPaymentSession(b models.Booking) *PaymentSession {
	return NewPaymentSession(b, e.Lifecycle, e.Logger)
}

func (e *DefaultEngine) SavedBookings() ([]models.BookingRecord, error) {
	return e.Repo.List()
}
