package models

import "time"

// PaymentMethod is one of the supported payment instruments.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodMobileWallet PaymentMethod = "mobile_wallet"
	MethodPaypal       PaymentMethod = "paypal"
)

// PaymentRequest carries the user-entered payment details into the session.
type PaymentRequest struct {
	Method PaymentMethod     `json:"method"`
	Fields map[string]string `json:"fields"`
}

// PaymentReceipt records the outcome of a simulated payment.
type PaymentReceipt struct {
	ConfirmationID string        `json:"confirmationId"`
	BookingID      string        `json:"bookingId"`
	Method         PaymentMethod `json:"method"`
	Amount         Cents         `json:"amount"`
	CreatedAt      time.Time     `json:"createdAt"`
}
