package triage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cyberhelp-labs/triage/internal/model"
)

func financialWith(amount string) (model.Classification, model.Entities) {
	c := model.Classification{Primary: "Financial Fraud", Subcategory: "UPI Fraud", PrimaryConf: 0.9, SubConf: 0.8}
	return c, model.Entities{Amount: amount}
}

func TestPrioritySocialAlwaysLow(t *testing.T) {
	c := model.Classification{Primary: "Social Media Fraud", Subcategory: "Instagram - Hack"}
	assert.Equal(t, PriorityLow, Priority(c, model.Entities{Amount: "₹5,00,000"}))
}

func TestPriorityFinancialThreshold(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"Rs.14999", PriorityMedium},
		{"Rs.15000", PriorityHigh},
		{"₹15,000", PriorityHigh},
		{"₹5,000", PriorityMedium},
		{"Rs 2 lakh", PriorityHigh},
		{"Rs 1 crore", PriorityHigh},
		{"Rs 14 thousand", PriorityMedium},
		{"Rs 16 thousand", PriorityHigh},
		{"", PriorityMedium},
		{"rupees none", PriorityMedium},
	}
	for _, tc := range cases {
		c, ents := financialWith(tc.amount)
		assert.Equal(t, tc.want, Priority(c, ents), "amount %q", tc.amount)
	}
}

func TestPriorityUncertainIsMedium(t *testing.T) {
	c := model.Classification{Primary: model.Uncertain, Subcategory: model.Uncertain}
	assert.Equal(t, PriorityMedium, Priority(c, model.Entities{Amount: "Rs.90000"}))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"₹5,000", 5000, true},
		{"Rs.15000", 15000, true},
		{"INR 250", 250, true},
		{"2 lakh", 200000, true},
		{"1 crore", 10000000, true},
		{"50 thousand", 50000, true},
		{"", 0, false},
		{"no digits", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseAmount(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw %q", tc.raw)
		if ok {
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "raw %q got %s", tc.raw, got)
		}
	}
}
