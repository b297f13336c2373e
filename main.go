package main

import (
	"fmt"

	"travelmate/config"
	"travelmate/database/repository"
	"travelmate/models"
	"travelmate/services/booking"
	"travelmate/utils"

	"go.uber.org/zap"
)

// main runs one sample payload through the full pipeline. The real producer
// screens are a separate UI shell; this driver stands in for them.
func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	repo := repository.NewFileBookingRepo(config.AppConfig.DataDir, logger)
	engine := booking.NewEngine(repo, logger)

	raw := map[string]any{
		"booking_type": "hotel",
		"hotel_name":   "Grand Riverside Hotel",
		"room_rate":    "RM 320.00",
		"nights":       2,
		"room_count":   1,
		"check_in":     "2026-09-12",
		"check_out":    "2026-09-14",
		"service_fee":  15,
		"total_price":  655,
	}

	b := engine.Normalize(raw, "")
	breakdown := engine.Breakdown(b)

	fmt.Printf("%s  %s\n", b.BookingID, b.ItemName)
	for _, d := range b.DisplayDetails {
		fmt.Printf("  %-16s %s\n", d.Label+":", d.Value)
	}
	fmt.Printf("  %-16s %s\n", "Total:", utils.FormatMoney(int64(breakdown.Total)))

	session := engine.NewPaymentSession(b)
	if err := session.CollectCustomerInfo("Aisyah Rahman", "aisyah@example.com", "+60 12-345 6789"); err != nil {
		logger.Fatal("customer info rejected", zap.Error(err))
	}

	receipt, err := session.Start(models.PaymentRequest{
		Method: models.MethodCreditCard,
		Fields: map[string]string{
			"card_number": "4111111111111111",
			"card_holder": "Aisyah Rahman",
			"expiry":      "09/28",
			"cvv":         "123",
		},
	}, func(finalized models.Booking) {
		fmt.Printf("booking %s is %s\n", finalized.BookingID, finalized.Status.DisplayLabel())
	})
	if err != nil {
		logger.Fatal("payment failed", zap.Error(err))
	}
	fmt.Printf("payment confirmation: %s (%s)\n", receipt.ConfirmationID, utils.FormatMoney(int64(receipt.Amount)))
}
