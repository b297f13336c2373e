package utils

import (
	"fmt"
	"strings"
	"time"

	"travelmate/config"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount in minor units as "RM 1,234.50".
func FormatMoney(minorUnits int64) string {
	symbol := config.AppConfig.CurrencySymbol
	if symbol == "" {
		symbol = "RM"
	}
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s%s %s", sign, symbol, moneyPrinter.Sprintf("%d.%02d", minorUnits/100, minorUnits%100))
}

// dateLayouts are the input formats producers are known to emit, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"2 January 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// FormatDisplayDate reformats a producer-supplied date string as "02 Jan 2006".
// Unparseable input is returned unchanged so the UI still shows something.
func FormatDisplayDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return raw
}

// TitleCaseWords uppercases the first letter of each underscore- or
// space-separated word, e.g. "car_rental" -> "Car Rental".
func TitleCaseWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
