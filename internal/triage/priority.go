// Package triage derives the operational follow-ups from a classification:
// case priority from the fraud family and the amount at stake, and the five
// step action advice shown to the complainant.
package triage

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cyberhelp-labs/triage/internal/model"
)

// Priority levels, highest urgency first.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// highThreshold is the rupee amount at and above which a financial complaint
// becomes HIGH priority.
var highThreshold = decimal.NewFromInt(15000)

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Priority ranks a classified complaint. Social media fraud is always LOW.
// Financial fraud is HIGH when the extracted amount reaches ₹15,000 and
// MEDIUM otherwise, including when no amount was found or it cannot be
// parsed. Uncertain classifications rank MEDIUM.
func Priority(c model.Classification, ents model.Entities) string {
	switch c.Primary {
	case "Social Media Fraud":
		return PriorityLow
	case "Financial Fraud":
		amount, ok := parseAmount(ents.Amount)
		if ok && amount.GreaterThanOrEqual(highThreshold) {
			return PriorityHigh
		}
		return PriorityMedium
	default:
		return PriorityMedium
	}
}

// parseAmount turns an extracted amount string like "₹5,000", "Rs.15000" or
// "2 lakh" into rupees. The first number in the string is taken and scaled
// by any thousand, lakh or crore word present.
func parseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, false
	}
	lower := strings.ToLower(raw)
	cleaned := strings.ReplaceAll(lower, ",", "")

	num := numberRe.FindString(cleaned)
	if num == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}

	switch {
	case strings.Contains(lower, "crore") || strings.Contains(lower, "cr"):
		amount = amount.Mul(decimal.NewFromInt(10000000))
	case strings.Contains(lower, "lakh") || strings.Contains(lower, "lac"):
		amount = amount.Mul(decimal.NewFromInt(100000))
	case strings.Contains(lower, "thousand") || strings.Contains(lower, "k"):
		amount = amount.Mul(decimal.NewFromInt(1000))
	}
	return amount, true
}
