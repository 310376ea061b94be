// Package signal scans lowercased complaint text for the coarse markers the
// classification stages branch on: concrete amounts, bank and card mentions,
// UPI apps, transaction verbs, fraud-call phrasing and so on. Detection is
// pure string work with package-level compiled patterns, no embeddings.
package signal

import (
	"regexp"
	"strings"
)

var (
	amountRe      = regexp.MustCompile(`₹|rs\.?\s*\d+|rupees?\s+\d+|\d+\s*(?:thousand|lakh|crore)`)
	bankRe        = regexp.MustCompile(`\b(?:sbi|hdfc|icici|axis|pnb|bob|kotak|yes bank|idbi|canara|union bank|bank)\b`)
	cardRe        = regexp.MustCompile(`\b(?:credit|debit)\s+card\b`)
	upiRe         = regexp.MustCompile(`\b(?:upi|phonepe|paytm|gpay|google pay|bhim)\b`)
	transactionRe = regexp.MustCompile(`\b(?:transaction|payment|transfer|withdrawn?|charged?|debited?)\b`)
	accountRe     = regexp.MustCompile(`\b(?:account|a/c)\b`)

	// unauthorizedRe stems fraud, scam and cheat so inflections like
	// "fraudster" and "scammed" count. OTP mentions count too: a complaint
	// naming an OTP is describing how money was taken.
	unauthorizedRe = regexp.MustCompile(`\b(?:unauthori[sz]ed|fraud\w*|scam\w*|cheat\w*|taken away|lost money|stolen|duped|otp)\b`)
)

// channelPhrases name the call channel outright. They are excised from the
// text before the unauthorized scan so that naming the channel ("a fraud
// call") does not also register as an unauthorized-money marker, and they
// imply call focus on their own.
var channelPhrases = []string{"fraud call", "fake call", "scam call"}

// contextPhrases describe receiving a call without labeling it.
var contextPhrases = []string{
	"received a call", "got a call", "someone called me",
	"call from unknown", "received call",
}

var callFocusPhrases = []string{
	"received call", "got call", "call from", "calling me", "called me",
	"received a call", "got a call",
}

var completedTransactionPhrases = []string{
	"taken away", "withdrawn", "lost money", "transferred", "paid", "debited", "charged",
}

// genericFinancialTerms is the broad net for the weak-financial stage.
var genericFinancialTerms = []string{
	"upi", "rupee", "rs ", "₹", "loan", "credit card", "debit card",
	"wallet", "paytm", "phonepe", "google pay", "bank", "account number",
	"transaction", "payment",
}

// Signals are the coarse markers detected in a single complaint.
type Signals struct {
	Amount       bool
	Bank         bool
	Card         bool
	UPI          bool
	Transaction  bool
	Account      bool
	Unauthorized bool

	FraudCallHits        int
	CallFocus            bool
	CompletedTransaction bool

	GenericFinancial int
}

// StrongCount is the number of strong markers present. Stage gating compares
// it against 3.
func (s Signals) StrongCount() int {
	n := 0
	for _, hit := range []bool{s.Amount, s.Bank, s.Card, s.UPI, s.Transaction, s.Account, s.Unauthorized} {
		if hit {
			n++
		}
	}
	return n
}

// Detect scans lowercased complaint text. Callers must lowercase first;
// Detect does not do it again.
func Detect(lower string) Signals {
	s := Signals{
		Amount:      amountRe.MatchString(lower),
		Bank:        bankRe.MatchString(lower),
		Card:        cardRe.MatchString(lower),
		UPI:         upiRe.MatchString(lower),
		Transaction: transactionRe.MatchString(lower),
		Account:     accountRe.MatchString(lower),
	}

	stripped := lower
	for _, p := range channelPhrases {
		if strings.Contains(lower, p) {
			s.FraudCallHits++
			s.CallFocus = true
			stripped = strings.ReplaceAll(stripped, p, " ")
		}
	}
	for _, p := range contextPhrases {
		if strings.Contains(lower, p) {
			s.FraudCallHits++
		}
	}
	s.Unauthorized = unauthorizedRe.MatchString(stripped)

	for _, p := range callFocusPhrases {
		if strings.Contains(lower, p) {
			s.CallFocus = true
			break
		}
	}
	for _, p := range completedTransactionPhrases {
		if strings.Contains(lower, p) {
			s.CompletedTransaction = true
			break
		}
	}
	for _, term := range genericFinancialTerms {
		if strings.Contains(lower, term) {
			s.GenericFinancial++
		}
	}
	return s
}
