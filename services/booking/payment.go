package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"travelmate/config"
	"travelmate/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requiredPaymentFields lists the inputs each payment method must supply.
var requiredPaymentFields = map[models.PaymentMethod][]string{
	models.MethodCreditCard:   {"card_number", "card_holder", "expiry", "cvv"},
	models.MethodBankTransfer: {"bank_name", "account_number", "account_holder"},
	models.MethodMobileWallet: {"wallet_provider", "wallet_id", "phone"},
	models.MethodPaypal:       {"email", "password"},
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CompletionFunc receives the finalized booking once payment succeeds.
type CompletionFunc func(models.Booking)

// PaymentSession owns a single booking from the moment the user reaches the
// payment step until it is finalized. No real payment network is involved;
// processing is a fixed simulated wait for UX pacing only.
type PaymentSession struct {
	booking   models.Booking
	total     models.Cents
	lifecycle *Lifecycle
	logger    *zap.Logger
}

func NewPaymentSession(b models.Booking, lifecycle *Lifecycle, logger *zap.Logger) *PaymentSession {
	breakdown := ComputeBreakdown(b)
	return &PaymentSession{
		booking:   b,
		total:     breakdown.Total,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// Booking returns the session's current view of the booking.
func (s *PaymentSession) Booking() models.Booking {
	return s.booking
}

// Total returns the amount that will be charged.
func (s *PaymentSession) Total() models.Cents {
	return s.total
}

// CollectCustomerInfo validates and records the customer's contact details.
// Validation failures do not touch the booking.
func (s *PaymentSession) CollectCustomerInfo(name, email, phone string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return NewValidationError("name", "name is required")
	}
	if email == "" {
		return NewValidationError("email", "email is required")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("email", "invalid email address")
	}
	if countDigits(phone) < 7 {
		return NewValidationError("phone", "phone number must have at least 7 digits")
	}

	s.booking.Customer = &models.CustomerInfo{Name: name, Email: email, Phone: phone}
	return nil
}

// Start validates the payment fields, runs the simulated processing wait,
// transitions the booking to confirmed, and hands the finalized booking to
// onComplete. On validation failure the booking status is untouched.
func (s *PaymentSession) Start(req models.PaymentRequest, onComplete CompletionFunc) (*models.PaymentReceipt, error) {
	if err := validatePaymentFields(req); err != nil {
		return nil, err
	}

	// Simulated processing; a plain wait, not business logic.
	if delay := config.AppConfig.PaymentProcessingDelayMs; delay > 0 {
		time.Sleep(time.Duration(delay) * time.Millisecond)
	}

	confirmationID := "PAY-" + uuid.New().String()

	// The confirmation id goes on the booking before the transition so the
	// persisted record carries it.
	paid := s.booking
	paid.PaymentConfirmationID = confirmationID

	confirmed, err := s.lifecycle.Transition(paid, models.StatusConfirmed)
	if err != nil {
		// A persistence failure does not roll the payment back; the caller
		// surfaces "confirmed but not saved" and still gets the booking.
		if _, ok := err.(*PersistenceError); !ok {
			return nil, err
		}
		s.booking = confirmed
		return s.receipt(confirmationID, req.Method), err
	}

	s.booking = confirmed

	s.logger.Info("payment successful",
		zap.String("bookingId", confirmed.BookingID),
		zap.String("confirmationId", confirmationID),
		zap.String("method", string(req.Method)),
	)

	if onComplete != nil {
		onComplete(confirmed)
	}
	return s.receipt(confirmationID, req.Method), nil
}

// Cancel abandons the session, transitioning the booking to cancelled. Safe
// to call from any non-terminal state.
func (s *PaymentSession) Cancel() (models.Booking, error) {
	cancelled, err := s.lifecycle.Transition(s.booking, models.StatusCancelled)
	if err != nil {
		return s.booking, err
	}
	s.booking = cancelled
	s.logger.Info("booking cancelled", zap.String("bookingId", cancelled.BookingID))
	return cancelled, nil
}

func (s *PaymentSession) receipt(confirmationID string, method models.PaymentMethod) *models.PaymentReceipt {
	return &models.PaymentReceipt{
		ConfirmationID: confirmationID,
		BookingID:      s.booking.BookingID,
		Method:         method,
		Amount:         s.total,
		CreatedAt:      time.Now(),
	}
}

func validatePaymentFields(req models.PaymentRequest) error {
	required, ok := requiredPaymentFields[req.Method]
	if !ok {
		return NewValidationError("method", fmt.Sprintf("unsupported payment method: %s", req.Method))
	}
	for _, field := range required {
		if strings.TrimSpace(req.Fields[field]) == "" {
			return NewValidationError(field, fmt.Sprintf("%s is required", field))
		}
	}
	if req.Method == models.MethodPaypal && !emailPattern.MatchString(strings.TrimSpace(req.Fields["email"])) {
		return NewValidationError("email", "invalid email address")
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
