package taxonomy

// KeywordRule binds a subcategory to its keyword list. Order inside each
// list matters: the first three entries seed the prototype phrase, and the
// whole list drives substring matching in the keyword stages.
type KeywordRule struct {
	Subcategory string
	Keywords    []string
}

// Variant binds a display name to the lowercase terms that detect it in
// free text. Lists are scanned in order; the first term that matches wins.
type Variant struct {
	Name  string
	Terms []string
}

var financialRules = []KeywordRule{
	{Investment, []string{"investment scam", "trading app", "ipo scam", "stock scam", "portfolio", "trading fraud", "fake investment", "share market", "invested", "crypto", "bitcoin", "cryptocurrency", "forex", "trading platform", "stock market"}},
	{CustomerCare, []string{"customer care", "fake customer service", "customer support fraud", "helpline scam", "toll free number fraud"}},
	{UPI, []string{"upi fraud", "upi id", "failed payment", "upi", "collect money via upi", "imps", "neft", "rtgs", "inb", "internet banking fraud", "via upi"}},
	{APK, []string{"apk", "download apk", "install apk", "malicious app", "android app fraud", "suspicious application"}},
	{Franchisee, []string{"franchisee", "dealership", "distributorship fraud", "fake franchise", "franchise scam"}},
	{OnlineJob, []string{"work from home", "job offer", "interview fee", "job scam", "part time job", "registration fee", "fake job"}},
	{DebitCard, []string{"debit card", "card blocked", "card used without consent", "atm card fraud", "card details stolen", "debit card cloned", "atm fraud"}},
	{CreditCard, []string{"credit card", "unauthorized transaction", "cc number", "credit card cloning", "card details leaked", "credit card fraud", "card limit", "credit limit", "cvv", "card otp", "credit card scam"}},
	{ECommerce, []string{"fake seller", "didn't receive", "scam e-commerce", "refund not received", "online shopping fraud", "fake product", "amazon fraud", "flipkart scam", "never received"}},
	{LoanApp, []string{"loan app", "loan approval", "loan app fraud", "instant loan scam", "personal loan fraud", "fake loan"}},
	{Sextortion, []string{"sextortion", "intimate photos", "blackmail", "nude photos", "video call blackmail", "compromising photos", "extortion"}},
	{OLX, []string{"olx", "olx scam", "classified ads fraud", "second hand sale fraud"}},
	{Lottery, []string{"lottery", "won lottery", "lucky draw", "prize money", "lottery scam", "sweepstakes fraud"}},
	{HotelBooking, []string{"hotel booking", "fake hotel", "oyo fraud", "booking.com scam", "accommodation fraud"}},
	{GamingApp, []string{"gaming app", "online game fraud", "betting app", "fantasy sports scam", "pubg scam", "game wallet fraud"}},
	{AEPS, []string{"aeps", "aadhar enabled payment", "aadhar fraud", "biometric fraud", "fingerprint payment fraud"}},
	{Tower, []string{"tower installation", "mobile tower", "telecom tower fraud", "tower lease scam"}},
	{EWallet, []string{"phonepe", "google pay", "paytm", "e-wallet", "wallet", "digital wallet fraud", "mobikwik"}},
	{DigitalArrest, []string{"digital arrest", "police arrest", "cyber crime arrest", "legal notice fraud", "arrest warrant", "fake police call"}},
	{FakeWebsite, []string{"fake website", "phishing site", "spoofed website", "clone website", "fake portal", "look-alike website"}},
	{TicketBooking, []string{"ticket booking", "train ticket fraud", "flight booking scam", "fake tickets", "irctc fraud"}},
	{Insurance, []string{"insurance maturity", "lic fraud", "insurance scam", "policy maturity", "fake insurance claim"}},
	{Others, []string{"scam", "fraud", "cheated", "fraudulent", "duped", "conned"}},
}

// FinancialRules returns the financial keyword rules in canonical order.
func FinancialRules() []KeywordRule { return financialRules }

// strongSignals lists the unmistakable markers per financial subcategory. A
// hit in this list lets a weighted keyword match commit on a single keyword
// instead of the usual two.
var strongSignals = map[string][]string{
	UPI:           {"upi", "phonepe", "paytm", "google pay", "gpay", "bhim", "@ybl", "@paytm", "@oksbi"},
	DebitCard:     {"debit", "atm", "debit card", "atm card"},
	CreditCard:    {"credit card", "cc", "cvv", "credit limit"},
	Sextortion:    {"blackmail", "intimate", "nude", "video", "sextortion", "extortion"},
	DigitalArrest: {"arrest", "police", "warrant", "legal notice", "digital arrest", "cyber crime arrest"},
	AEPS:          {"aadhar", "biometric", "fingerprint", "aeps", "aadhar enabled"},
	LoanApp:       {"loan", "personal loan", "instant loan", "loan app"},
	EWallet:       {"wallet", "phonepe", "paytm", "google pay", "e-wallet"},
	ECommerce:     {"amazon", "flipkart", "myntra", "meesho", "didn't receive", "fake product"},
	OLX:           {"olx", "classified", "second hand"},
	Investment:    {"investment", "trading", "ipo", "stock", "crypto", "bitcoin"},
	GamingApp:     {"gaming", "pubg", "betting", "fantasy"},
	Lottery:       {"lottery", "lucky draw", "prize", "won"},
}

// StrongSignals returns the strong marker terms for a financial subcategory,
// or nil when the subcategory has none curated.
func StrongSignals(sub string) []string { return strongSignals[sub] }

// protoPlatformKeywordTable feeds prototype phrases only; the detection
// variants below use separate, stricter term lists.
var protoPlatformKeywordTable = map[string][]string{
	"Instagram": {"instagram", "insta", "ig account", "instagram profile", "insta account"},
	"Facebook":  {"facebook", "fb", "fb account", "facebook profile", "fb profile"},
	"WhatsApp":  {"whatsapp", "whats app", "wa", "whatsapp account", "whatsapp number"},
	"Telegram":  {"telegram", "tg", "telegram account", "telegram group", "tg account"},
	"X":         {"twitter", "x account", "tweet", "x platform", "twitter account"},
	"Gmail":     {"gmail", "google mail", "email account", "email address"},
}

var protoIssueKeywordTable = map[string][]string{
	"Impersonation":   {"impersonation", "fake profile", "fake account", "impersonate", "pretending"},
	"Hack":            {"hack", "hacked", "hacking", "unauthorized access", "can't login"},
	"Obscene Content": {"obscene", "vulgar", "morphed photos", "inappropriate", "explicit content"},
	"Fake Account":    {"fake account", "scam account", "fraud account", "clone account"},
}

func protoPlatformKeywords(platform string) []string {
	if kws, ok := protoPlatformKeywordTable[platform]; ok {
		return kws
	}
	// "Fraud Call" has no platform term list of its own.
	return []string{"fraud call"}
}

func protoIssueKeywords(issue string) []string {
	return protoIssueKeywordTable[issue]
}

// platformVariants drive platform detection in complaint text. The bare
// platform letter "x" only matches when space-delimited.
var platformVariants = []Variant{
	{"Instagram", []string{"instagram", "insta", "ig account"}},
	{"Facebook", []string{"facebook", "fb account", "fb profile"}},
	{"WhatsApp", []string{"whatsapp", "whats app", "wa account"}},
	{"Telegram", []string{"telegram", "tg account"}},
	{"X", []string{"twitter", "x account", " x ", "tweet"}},
	{"Gmail", []string{"gmail", "google mail", "email account"}},
}

var issueVariants = []Variant{
	{"Impersonation", []string{"impersonat", "fake profile", "fake account", "using my photo", "using my name", "pretending to be"}},
	{"Hack", []string{"hack", "hacked", "can't login", "changed password", "lost access", "unauthorized access"}},
	{"Obscene Content", []string{"obscene", "morphed", "nude", "intimate", "vulgar", "inappropriate content", "explicit"}},
	{"Fake Account", []string{"fake account", "fake profile", "scam account", "fraud account"}},
}

// PlatformVariants returns the ordered platform detection lists.
func PlatformVariants() []Variant { return platformVariants }

// IssueVariants returns the ordered issue detection lists.
func IssueVariants() []Variant { return issueVariants }
