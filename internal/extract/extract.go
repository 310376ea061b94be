// Package extract pulls structured entities out of free-form complaint text
// with compiled regular expressions: amounts, phone numbers, UPI handles,
// URLs, account numbers, transaction references, dates, bank names and the
// first mentioned platform.
package extract

import (
	"regexp"
	"strings"

	"github.com/cyberhelp-labs/triage/internal/model"
)

var (
	amountRe  = regexp.MustCompile(`(?i)(₹|rs\.?\s?|inr\s?)\s*\d{1,3}(?:[,\d]*)?(?:\.\d+)?`)
	phoneRe   = regexp.MustCompile(`(?:\+91|91|0)?[-\s]?(?:\d{10}|\d{5}[-\s]?\d{5}|\d{3}[-\s]?\d{3}[-\s]?\d{4})`)
	upiRe     = regexp.MustCompile(`[\w.\-]{2,256}@[a-zA-Z]{2,64}`)
	urlRe     = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	accountRe = regexp.MustCompile(`(?i)\b(?:account|acc|a/c)[\s#:\-]*(\d{9,18})\b`)
	txnRe     = regexp.MustCompile(`(?i)(?:transaction|txn|ref|reference|utr)[\s#:\-]*([A-Z0-9]{10,20})\b`)
	dateRe    = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`)
)

// banks are common Indian bank markers, matched as substrings of the
// lowercased text.
var banks = []string{
	"sbi", "hdfc", "icici", "axis", "pnb", "bob", "canara",
	"union bank", "kotak", "yes bank", "idbi", "indian bank",
}

// platforms are checked in order; the first present wins.
var platforms = []string{
	"instagram", "facebook", "x", "twitter", "whatsapp", "telegram", "gmail",
	"paytm", "phonepe", "google pay", "amazon", "flipkart", "olx",
}

// Entities extracts every recognized entity from text. It never fails: text
// with nothing recognizable yields a zero-valued result.
func Entities(text string) model.Entities {
	low := strings.ToLower(text)

	var e model.Entities
	if m := amountRe.FindString(text); m != "" {
		e.Amount = m
	}
	e.PhoneNumbers = dedupe(phoneRe.FindAllString(text, -1))
	if m := upiRe.FindString(text); m != "" {
		e.UPIID = m
	}
	e.URLs = urlRe.FindAllString(text, -1)
	e.AccountNumbers = dedupe(captures(accountRe, text))
	e.TransactionIDs = dedupe(captures(txnRe, text))
	e.Dates = dateRe.FindAllString(text, -1)

	for _, b := range banks {
		if strings.Contains(low, b) {
			e.BankNames = append(e.BankNames, b)
		}
	}
	for _, p := range platforms {
		if strings.Contains(low, p) {
			e.Platform = p
			break
		}
	}
	return e
}

func captures(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// dedupe drops repeats while keeping first-seen order.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
