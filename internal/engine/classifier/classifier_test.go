package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
	"github.com/cyberhelp-labs/triage/internal/engine/testdata"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	emb := &testdata.MockEmbedder{}
	tax, err := taxonomy.New(emb)
	require.NoError(t, err)
	return New(emb, tax)
}

func TestStrongFinancialDebitCard(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("I lost Rs.15000 from my HDFC debit card in an unauthorized transaction")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.Equal(t, taxonomy.DebitCard, res.Subcategory)
	assert.Equal(t, StageStrongFinancial, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.85)
	assert.GreaterOrEqual(t, res.SubConf, 0.80)
}

func TestStrongFinancialCreditCard(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("₹50000 charged on my credit card, the bank says it was fraudulent")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.Equal(t, taxonomy.CreditCard, res.Subcategory)
	assert.Equal(t, StageStrongFinancial, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.85)
}

func TestStrongFinancialUPIHandle(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("I lost Rs.15000 via PhonePe to scammer@paytm, it was a scam")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.Equal(t, taxonomy.UPI, res.Subcategory)
	assert.Equal(t, StageStrongFinancial, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.83)
	assert.GreaterOrEqual(t, res.SubConf, 0.78)
}

func TestFraudCallCommitsWithoutCompletedTransaction(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("I received a fraud call from an unknown person asking for my OTP")
	require.NoError(t, err)

	assert.Equal(t, "Social Media Fraud", res.Primary)
	assert.Equal(t, taxonomy.FraudCallImpersonation, res.Subcategory)
	assert.Equal(t, StageFraudCall, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.75)
	assert.Equal(t, 0.85, res.SubConf)
}

func TestFraudCallWithBankAndCardMentions(t *testing.T) {
	// Naming the bank and card in a call complaint keeps it a call complaint
	// as long as no transaction was completed.
	c := newTestClassifier(t)
	res, err := c.Classify("I received a fraud call claiming to be from my bank asking for my debit card details")
	require.NoError(t, err)

	assert.Equal(t, "Social Media Fraud", res.Primary)
	assert.Equal(t, taxonomy.FraudCallImpersonation, res.Subcategory)
	assert.Equal(t, StageFraudCall, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.75)
	assert.Equal(t, 0.85, res.SubConf)
}

func TestSocialStageInstagramImpersonation(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("Someone created a fake Instagram profile impersonating me and posting my photos")
	require.NoError(t, err)

	assert.Equal(t, "Social Media Fraud", res.Primary)
	assert.Equal(t, "Instagram - Impersonation", res.Subcategory)
	assert.Equal(t, StageSocial, res.Stage)
}

func TestFraudCallSkippedWhenMoneyAlreadyLost(t *testing.T) {
	// A completed transaction turns a call complaint into a money complaint.
	c := newTestClassifier(t)
	res, err := c.Classify("I received a fraud call and then Rs.20000 was debited from my SBI account")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.NotEqual(t, StageFraudCall, res.Stage)
}

func TestKeywordStageDigitalArrest(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("They threatened a digital arrest and showed an arrest warrant from cyber crime")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.Equal(t, taxonomy.DigitalArrest, res.Subcategory)
	assert.Equal(t, StageKeyword, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.75)
	assert.GreaterOrEqual(t, res.SubConf, 0.70)
}

func TestKeywordStageSingleHitNeedsStrongSignal(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("A buyer on olx duped me over a sofa listing")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.Equal(t, taxonomy.OLX, res.Subcategory)
	assert.Equal(t, StageKeyword, res.Stage)
}

func TestSocialStageInstagramHack(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("Someone hacked my Instagram account and changed the password")
	require.NoError(t, err)

	assert.Equal(t, "Social Media Fraud", res.Primary)
	assert.Equal(t, "Instagram - Hack", res.Subcategory)
	assert.Equal(t, StageSocial, res.Stage)
	assert.GreaterOrEqual(t, res.PrimaryConf, 0.70)
	assert.GreaterOrEqual(t, res.SubConf, 0.65)
}

func TestWeakFinancialStageHasNoFloors(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("I made a payment and something felt off about it")
	require.NoError(t, err)

	assert.Equal(t, "Financial Fraud", res.Primary)
	assert.Equal(t, StageWeakFinancial, res.Stage)
	assert.Contains(t, taxonomy.FinancialSubcategories(), res.Subcategory)
}

func TestEmbeddingFallbackAlwaysCommits(t *testing.T) {
	c := newTestClassifier(t)
	res, err := c.Classify("Someone wronged me badly yesterday")
	require.NoError(t, err)

	assert.Equal(t, StageEmbedding, res.Stage)
	primary, ok := c.tax.PrimaryOf(res.Subcategory)
	require.True(t, ok)
	assert.Equal(t, string(primary), res.Primary)
}

func TestClassifyEmbedsInputAtMostOnce(t *testing.T) {
	emb := &testdata.MockEmbedder{}
	tax, err := taxonomy.New(emb)
	require.NoError(t, err)
	c := New(emb, tax)

	before := len(emb.Calls)
	_, err = c.Classify("Rs.9000 withdrawn from my ICICI debit card fraudulently")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(emb.Calls)-before, 1)
}

func TestBestSocialSubcategoryInference(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"fake instagram profile pretending to be me", "Instagram - Impersonation"},
		{"my facebook got hacked, can't login", "Facebook - Hack"},
		{"someone posted morphed photos of me on telegram", "Telegram - Obscene Content"},
		{"my whatsapp shows strange activity", "WhatsApp - Fake Account"},
		{"hacked, lost access to everything, check your email", "Gmail - Hack"},
		{"an impersonator keeps messaging my contacts", "WhatsApp - Impersonation"},
		{"someone impersonated me online", "Facebook - Impersonation"},
		{"strange person keeps calling my phone", "Fraud Call - Impersonation"},
		{"nothing matches here at all", "Facebook - Impersonation"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, bestSocialSubcategory(tc.text), "text %q", tc.text)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := newTestClassifier(t)
	first, err := c.Classify("my paytm wallet was drained by a scammer")
	require.NoError(t, err)
	second, err := c.Classify("my paytm wallet was drained by a scammer")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, taxonomy.EWallet, first.Subcategory)
}

func TestConfidencesStayInRange(t *testing.T) {
	c := newTestClassifier(t)
	texts := []string{
		"Rs.90000 stolen from my SBI account in an unauthorized transfer",
		"fake facebook account using my name",
		"they promised a lottery prize if i paid the fee",
		"random unrelated sentence",
	}
	for _, text := range texts {
		res, err := c.Classify(text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.PrimaryConf, 0.0, "text %q", text)
		assert.LessOrEqual(t, res.PrimaryConf, 1.0, "text %q", text)
		assert.GreaterOrEqual(t, res.SubConf, 0.0, "text %q", text)
		assert.LessOrEqual(t, res.SubConf, 1.0, "text %q", text)
	}
}

func TestClassifyLabeledCorpus(t *testing.T) {
	entries, err := testdata.LoadCorpus()
	require.NoError(t, err)

	c := newTestClassifier(t)
	for _, e := range entries {
		res, err := c.Classify(e.Text)
		require.NoError(t, err, e.Description)
		assert.Equal(t, e.ExpectedPrimary, res.Primary, "%s: %q", e.Description, e.Text)
		assert.Equal(t, e.ExpectedSub, res.Subcategory, "%s: %q", e.Description, e.Text)
	}
}
