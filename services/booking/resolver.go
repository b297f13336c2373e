package booking

import (
	"strings"

	"travelmate/config"

	"github.com/spf13/cast"
)

// FieldResolver resolves a canonical field from a raw payload by trying an
// ordered list of candidate field names. Every price- or quantity-bearing
// concept has several plausible spellings across the four producers; the
// priority list keeps that variability in one place.
//
// A candidate is skipped when it is absent, nil, an empty string, or a
// "none"/"n/a" placeholder, and for numeric resolution when it fails to parse
// after currency markers and separators are stripped.

// ResolveString returns the first usable string among the candidates, or ""
// when none resolves.
func ResolveString(raw map[string]any, candidates ...string) string {
	for _, key := range candidates {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(cast.ToString(v))
		if isPlaceholder(s) {
			continue
		}
		return s
	}
	return ""
}

// ResolveNumber returns the first parseable numeric value among the
// candidates. The boolean is false when no candidate resolves.
func ResolveNumber(raw map[string]any, candidates ...string) (float64, bool) {
	for _, key := range candidates {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if f, ok := coerceNumber(v); ok {
			return f, true
		}
	}
	return 0, false
}

// ResolveInt is ResolveNumber truncated to an int.
func ResolveInt(raw map[string]any, candidates ...string) (int, bool) {
	f, ok := ResolveNumber(raw, candidates...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// ResolveSum adds every candidate that resolves. Unlike the pick-one helpers,
// the tax/fee fields are independent charges, not alternative spellings. Each
// term is clamped to zero on its own so one negative field cannot eat into
// the others.
func ResolveSum(raw map[string]any, candidates ...string) float64 {
	total := 0.0
	for _, key := range candidates {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if f, ok := coerceNumber(v); ok && f > 0 {
			total += f
		}
	}
	return total
}

func coerceNumber(v any) (float64, bool) {
	switch typed := v.(type) {
	case string:
		s := strings.TrimSpace(typed)
		if isPlaceholder(s) {
			return 0, false
		}
		s = stripCurrencyMarkers(s)
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

func stripCurrencyMarkers(s string) string {
	if symbol := config.AppConfig.CurrencySymbol; symbol != "" {
		s = strings.ReplaceAll(s, symbol, "")
	}
	s = strings.ReplaceAll(s, "RM", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func isPlaceholder(s string) bool {
	switch strings.ToLower(s) {
	case "", "none", "n/a", "na", "-":
		return true
	}
	return false
}
