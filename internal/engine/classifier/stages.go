package classifier

import (
	"sort"
	"strings"

	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
	"github.com/cyberhelp-labs/triage/internal/model"
)

// stageStrongFinancial commits when the complaint names a concrete amount and
// carries at least three strong financial markers overall. The branch order
// is card, then UPI, then bank or account.
func stageStrongFinancial(r *request) (*model.Classification, error) {
	if !r.sig.Amount || r.sig.StrongCount() < 3 {
		return nil, nil
	}

	switch {
	case r.sig.Card:
		emb, err := r.embedding()
		if err != nil {
			return nil, err
		}
		primary := r.primaryConf(emb, r.c.tax.FinancialMean(), 0.85)
		switch {
		case strings.Contains(r.lower, "credit"):
			return financial(taxonomy.CreditCard, primary, floorAt(r.score(emb, taxonomy.CreditCard), 0.80), StageStrongFinancial), nil
		case strings.Contains(r.lower, "debit"):
			return financial(taxonomy.DebitCard, primary, floorAt(r.score(emb, taxonomy.DebitCard), 0.80), StageStrongFinancial), nil
		default:
			// Card matched without a credit/debit qualifier nearby.
			primary = r.primaryConf(emb, r.c.tax.FinancialMean(), 0.82)
			return financial(taxonomy.DebitCard, primary, floorAt(r.score(emb, taxonomy.DebitCard), 0.78), StageStrongFinancial), nil
		}

	case r.sig.UPI:
		emb, err := r.embedding()
		if err != nil {
			return nil, err
		}
		primary := r.primaryConf(emb, r.c.tax.FinancialMean(), 0.83)
		// PhonePe, Paytm and GPay can mean either UPI or a wallet. An
		// explicit UPI mention or a VPA-style handle settles it; otherwise
		// the closer prototype decides.
		if strings.Contains(r.lower, "upi") || strings.Contains(r.text, "@") {
			return financial(taxonomy.UPI, primary, floorAt(r.score(emb, taxonomy.UPI), 0.78), StageStrongFinancial), nil
		}
		upiScore := r.score(emb, taxonomy.UPI)
		walletScore := r.score(emb, taxonomy.EWallet)
		if upiScore > walletScore {
			return financial(taxonomy.UPI, primary, upiScore, StageStrongFinancial), nil
		}
		return financial(taxonomy.EWallet, primary, walletScore, StageStrongFinancial), nil

	case r.sig.Bank || r.sig.Account:
		emb, err := r.embedding()
		if err != nil {
			return nil, err
		}
		primary := r.primaryConf(emb, r.c.tax.FinancialMean(), 0.80)
		sub, score := r.bestOf(emb, []string{
			taxonomy.UPI, taxonomy.DebitCard, taxonomy.CreditCard, taxonomy.EWallet, taxonomy.Others,
		})
		return financial(sub, primary, floorAt(score, 0.75), StageStrongFinancial), nil
	}
	return nil, nil
}

// stageFraudCall commits when the complaint is about receiving a fraudulent
// call rather than about money already lost: a call phrase is present, strong
// financial markers stay under three, the text focuses on the call itself and
// no completed transaction is described.
func stageFraudCall(r *request) (*model.Classification, error) {
	if r.sig.FraudCallHits < 1 || r.sig.StrongCount() >= 3 {
		return nil, nil
	}
	if !r.sig.CallFocus || r.sig.CompletedTransaction {
		return nil, nil
	}
	emb, err := r.embedding()
	if err != nil {
		return nil, err
	}
	primary := r.primaryConf(emb, r.c.tax.SocialMean(), 0.75)
	return &model.Classification{
		Primary:     string(taxonomy.Social),
		Subcategory: taxonomy.FraudCallImpersonation,
		PrimaryConf: primary,
		SubConf:     0.85,
		Stage:       StageFraudCall,
	}, nil
}

// keywordMatch is one financial subcategory's keyword tally for the request.
type keywordMatch struct {
	Sub      string
	Count    int
	Weighted float64
}

// financialMatches tallies curated keywords per financial subcategory and
// ranks by weighted score, highest first. Ties keep taxonomy order.
func (r *request) financialMatches() []keywordMatch {
	if r.matched {
		return r.matches
	}
	r.matched = true
	for _, rule := range taxonomy.FinancialRules() {
		count := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(r.lower, kw) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		weight := 1.0
		switch {
		case (rule.Subcategory == taxonomy.CreditCard || rule.Subcategory == taxonomy.DebitCard) && r.sig.Card:
			weight = 2.0
		case rule.Subcategory == taxonomy.UPI && r.sig.UPI:
			weight = 2.0
		case rule.Subcategory == taxonomy.Sextortion && strings.Contains(r.lower, "sextortion"):
			weight = 2.5
		case rule.Subcategory == taxonomy.DigitalArrest && strings.Contains(r.lower, "arrest"):
			weight = 2.0
		}
		r.matches = append(r.matches, keywordMatch{rule.Subcategory, count, float64(count) * weight})
	}
	sort.SliceStable(r.matches, func(i, j int) bool {
		return r.matches[i].Weighted > r.matches[j].Weighted
	})
	return r.matches
}

// stageKeyword commits on the top weighted keyword match when it is backed by
// at least two keyword hits, or by one hit plus a strong marker curated for
// that subcategory.
func stageKeyword(r *request) (*model.Classification, error) {
	matches := r.financialMatches()
	if len(matches) == 0 {
		return nil, nil
	}
	best := matches[0]
	if best.Count < 2 && !hasStrongSignal(r.lower, best.Sub) {
		return nil, nil
	}
	emb, err := r.embedding()
	if err != nil {
		return nil, err
	}
	primary := r.primaryConf(emb, r.c.tax.FinancialMean(), 0.75)
	return financial(best.Sub, primary, floorAt(r.score(emb, best.Sub), 0.70), StageKeyword), nil
}

func hasStrongSignal(lower, sub string) bool {
	for _, sig := range taxonomy.StrongSignals(sub) {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

// stageSocial commits when at least two social markers are present and strong
// financial markers stay under three.
func stageSocial(r *request) (*model.Classification, error) {
	if socialSignalCount(r.lower) < 2 || r.sig.StrongCount() >= 3 {
		return nil, nil
	}
	sub := bestSocialSubcategory(r.lower)
	emb, err := r.embedding()
	if err != nil {
		return nil, err
	}
	primary := r.primaryConf(emb, r.c.tax.SocialMean(), 0.70)
	return &model.Classification{
		Primary:     string(taxonomy.Social),
		Subcategory: sub,
		PrimaryConf: primary,
		SubConf:     floorAt(r.score(emb, sub), 0.65),
		Stage:       StageSocial,
	}, nil
}

// stageWeakFinancial commits on any generic financial term or any leftover
// keyword match. Confidences come straight from the embedding, with no floors.
func stageWeakFinancial(r *request) (*model.Classification, error) {
	matches := r.financialMatches()
	if r.sig.GenericFinancial < 1 && len(matches) == 0 {
		return nil, nil
	}
	emb, err := r.embedding()
	if err != nil {
		return nil, err
	}
	var sub string
	var score float64
	if len(matches) > 0 {
		sub = matches[0].Sub
		score = r.score(emb, sub)
	} else {
		sub, score = r.bestOf(emb, taxonomy.FinancialSubcategories())
	}
	primary := normalize(cosineSimilarity(emb, r.c.tax.FinancialMean()))
	return financial(sub, primary, score, StageWeakFinancial), nil
}

// stageEmbedding is the unconditional fallback: pick the closer family
// aggregate, then the closest subcategory within it. Financial wins ties.
func stageEmbedding(r *request) (*model.Classification, error) {
	emb, err := r.embedding()
	if err != nil {
		return nil, err
	}
	simFin := cosineSimilarity(emb, r.c.tax.FinancialMean())
	simSoc := cosineSimilarity(emb, r.c.tax.SocialMean())

	if simFin >= simSoc {
		sub, score := r.bestOf(emb, taxonomy.FinancialSubcategories())
		return financial(sub, normalize(simFin), score, StageEmbedding), nil
	}
	sub, score := r.bestOf(emb, taxonomy.SocialSubcategories())
	return &model.Classification{
		Primary:     string(taxonomy.Social),
		Subcategory: sub,
		PrimaryConf: normalize(simSoc),
		SubConf:     score,
		Stage:       StageEmbedding,
	}, nil
}

func financial(sub string, primaryConf, subConf float64, stage string) *model.Classification {
	return &model.Classification{
		Primary:     string(taxonomy.Financial),
		Subcategory: sub,
		PrimaryConf: primaryConf,
		SubConf:     subConf,
		Stage:       stage,
	}
}
