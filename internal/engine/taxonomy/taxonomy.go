// Package taxonomy defines the closed two-level complaint category tree and
// builds the prototype embedding for every subcategory at startup. The
// taxonomy is immutable after New: no subcategory is created or removed at
// runtime, and prototype vectors are read-only shared state safe for
// concurrent readers.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/cyberhelp-labs/triage/internal/engine/embedder"
)

// Primary identifies a top-level complaint family.
type Primary string

const (
	Financial Primary = "Financial Fraud"
	Social    Primary = "Social Media Fraud"
)

// Financial subcategory keys. The declared order here is the taxonomy's
// canonical iteration order; tie-breaks in similarity lookups resolve to the
// earlier entry, so the order is part of the contract.
const (
	Investment    = "Investment/Trading/IPO Fraud"
	CustomerCare  = "Customer Care Fraud"
	UPI           = "UPI Fraud"
	APK           = "APK Fraud"
	Franchisee    = "Fake Franchisee/Dealership Fraud"
	OnlineJob     = "Online Job Fraud"
	DebitCard     = "Debit Card Fraud"
	CreditCard    = "Credit Card Fraud"
	ECommerce     = "E-Commerce Fraud"
	LoanApp       = "Loan App Fraud"
	Sextortion    = "Sextortion Fraud"
	OLX           = "OLX Fraud"
	Lottery       = "Lottery Fraud"
	HotelBooking  = "Hotel Booking Fraud"
	GamingApp     = "Gaming App Fraud"
	AEPS          = "AEPS Fraud"
	Tower         = "Tower Installation Fraud"
	EWallet       = "E-Wallet Fraud"
	DigitalArrest = "Digital Arrest Fraud"
	FakeWebsite   = "Fake Website Scam Frauds"
	TicketBooking = "Ticket Booking Fraud"
	Insurance     = "Insurance Maturity Fraud"
	Others        = "Others"
)

// FraudCallImpersonation is the cross-cutting subcategory: it lives in the
// social grid (platform "Fraud Call") but is reachable from financial-looking
// contexts too, depending on which pipeline stage commits.
const FraudCallImpersonation = "Fraud Call - Impersonation"

var financialOrder = []string{
	Investment, CustomerCare, UPI, APK, Franchisee, OnlineJob,
	DebitCard, CreditCard, ECommerce, LoanApp, Sextortion, OLX,
	Lottery, HotelBooking, GamingApp, AEPS, Tower, EWallet,
	DigitalArrest, FakeWebsite, TicketBooking, Insurance, Others,
}

var platforms = []string{"Facebook", "Instagram", "X", "WhatsApp", "Telegram", "Gmail", "Fraud Call"}

var issues = []string{"Impersonation", "Fake Account", "Hack", "Obscene Content"}

// FinancialSubcategories returns the financial subcategory keys in canonical order.
func FinancialSubcategories() []string {
	out := make([]string, len(financialOrder))
	copy(out, financialOrder)
	return out
}

// SocialSubcategories returns the platform × issue grid in platform-major
// canonical order, e.g. "Facebook - Impersonation", "Facebook - Fake Account", …
func SocialSubcategories() []string {
	out := make([]string, 0, len(platforms)*len(issues))
	for _, p := range platforms {
		for _, i := range issues {
			out = append(out, SocialKey(p, i))
		}
	}
	return out
}

// SocialKey combines a platform and an issue into a subcategory key.
func SocialKey(platform, issue string) string {
	return platform + " - " + issue
}

// Taxonomy holds the subcategory → primary mapping and the prototype vectors
// built once at initialization.
type Taxonomy struct {
	prototypes map[string][]float32
	primaryOf  map[string]Primary

	finMean []float32
	socMean []float32
	dim     int
}

// New builds the Taxonomy: every subcategory's representative phrase is
// encoded in a single batched call, then the per-family aggregate prototypes
// are computed as element-wise means. An empty family yields a zero-vector
// aggregate, which cosines to 0 rather than NaN.
func New(emb embedder.Embedder) (*Taxonomy, error) {
	fin := FinancialSubcategories()
	soc := SocialSubcategories()

	keys := make([]string, 0, len(fin)+len(soc))
	keys = append(keys, fin...)
	keys = append(keys, soc...)

	phrases := make([]string, len(keys))
	for i, k := range keys {
		phrases[i] = prototypePhrase(k)
	}

	vecs, err := emb.EmbedBatch(phrases)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: embed prototypes: %w", err)
	}
	if len(vecs) != len(keys) {
		return nil, fmt.Errorf("taxonomy: embedder returned %d vectors for %d phrases", len(vecs), len(keys))
	}

	t := &Taxonomy{
		prototypes: make(map[string][]float32, len(keys)),
		primaryOf:  make(map[string]Primary, len(keys)),
	}
	for i, k := range keys {
		t.prototypes[k] = vecs[i]
	}
	for _, k := range fin {
		t.primaryOf[k] = Financial
	}
	for _, k := range soc {
		t.primaryOf[k] = Social
	}

	if len(vecs) > 0 {
		t.dim = len(vecs[0])
	}
	t.finMean = t.meanOf(fin)
	t.socMean = t.meanOf(soc)

	return t, nil
}

// meanOf computes the element-wise mean of the prototypes for the given keys.
// An empty key set (or all-missing prototypes) yields a zero vector.
func (t *Taxonomy) meanOf(keys []string) []float32 {
	mean := make([]float32, t.dim)
	n := 0
	for _, k := range keys {
		vec, ok := t.prototypes[k]
		if !ok {
			continue
		}
		for d := range vec {
			mean[d] += vec[d]
		}
		n++
	}
	if n == 0 {
		return mean
	}
	inv := 1.0 / float32(n)
	for d := range mean {
		mean[d] *= inv
	}
	return mean
}

// Prototype returns the prototype vector for a subcategory key.
func (t *Taxonomy) Prototype(sub string) ([]float32, bool) {
	vec, ok := t.prototypes[sub]
	return vec, ok
}

// FinancialMean returns the aggregate financial-family prototype.
func (t *Taxonomy) FinancialMean() []float32 { return t.finMean }

// SocialMean returns the aggregate social-family prototype.
func (t *Taxonomy) SocialMean() []float32 { return t.socMean }

// PrimaryOf returns the primary category owning a subcategory key.
func (t *Taxonomy) PrimaryOf(sub string) (Primary, bool) {
	p, ok := t.primaryOf[sub]
	return p, ok
}

// prototypePhrase builds the short representative phrase a subcategory is
// embedded from: its top 3 curated keywords joined with " . ", falling back to
// the lowercase display name when no keywords are curated.
func prototypePhrase(sub string) string {
	kws := prototypeKeywords(sub)
	if len(kws) == 0 {
		return strings.ToLower(sub)
	}
	if len(kws) > 3 {
		kws = kws[:3]
	}
	return strings.Join(kws, " . ")
}

// prototypeKeywords returns the curated phrase list for a subcategory: the
// financial keyword table for financial keys, platform+issue variants plus
// combined phrasings for social keys.
func prototypeKeywords(sub string) []string {
	for _, rule := range financialRules {
		if rule.Subcategory == sub {
			return rule.Keywords
		}
	}
	for _, p := range platforms {
		for _, i := range issues {
			if SocialKey(p, i) != sub {
				continue
			}
			pl := strings.ToLower(p)
			il := strings.ToLower(i)
			combined := append([]string{}, protoPlatformKeywords(p)...)
			combined = append(combined, protoIssueKeywords(i)...)
			combined = append(combined, pl+" "+il, il+" "+pl)
			return combined
		}
	}
	return nil
}
