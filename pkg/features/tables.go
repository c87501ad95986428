package features

import "sync"

// Static reference tables. The values below are part of the feature
// algorithm itself, the same way a vocabulary is part of an NLP model:
// changing an entry changes feature values, so the classifier must be
// retrained whenever they change. All tables are built once and never
// mutated afterwards, so concurrent extraction needs no locking.

// defaultBrands are widely phished brand names, used for typosquat distance
// and look-alike detection.
var defaultBrands = []string{
	"google", "facebook", "amazon", "apple", "microsoft", "paypal", "netflix",
	"instagram", "twitter", "linkedin", "whatsapp", "youtube", "yahoo", "ebay",
	"dropbox", "spotify", "adobe", "chase", "wellsfargo", "bankofamerica",
	"citi", "hsbc", "barclays", "halifax", "natwest", "santander", "lloyds",
	"steam", "roblox", "epic", "coinbase", "binance", "metamask", "opensea",
	"paytm", "phonepe", "gpay", "bhim", "razorpay", "hdfc", "icici", "sbi",
	"axis", "kotak", "airtel", "jio", "vodafone", "bsnl", "flipkart", "myntra",
}

// suspiciousTLDs are top-level domains with disproportionate abuse rates.
var suspiciousTLDs = []string{
	"xyz", "tk", "top", "cf", "ml", "ga", "gq", "pw", "cc", "icu", "club", "online",
	"site", "website", "space", "live", "click", "link", "info", "biz", "work",
	"tech", "store", "shop",
}

// legitUPIHandles are payment-service-provider handles issued by real banks
// and PSPs. A VPA whose handle is not in this set is suspicious.
var legitUPIHandles = []string{
	"okaxis", "okicici", "oksbi", "okhdfcbank", "ybl", "ibl", "axl", "apl", "fbl",
	"upi", "paytm", "waaxis", "waxis", "rajgovhdfcbank", "barodampay", "allbank",
	"andb", "aubank", "cnrb", "csbpay", "dbs", "dcb", "federal", "hdfcbank", "idbi",
	"idfc", "indus", "idfcbank", "jio", "kotak", "lvb", "mahb", "nsdl", "pnb",
	"psb", "rbl", "sib", "tjsb", "uco", "union", "united", "vijb", "yapl", "airtel",
	"airtelpaymentsbank", "postbank",
}

// shortenerDomains are known URL-shortener registered domains.
var shortenerDomains = []string{
	"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly", "is.gd", "buff.ly",
	"adf.ly", "tiny.cc", "clck.ru", "cutt.ly", "rb.gy", "short.io", "v.gd",
}

// dangerousExtensions are file extensions that execute or install code.
var dangerousExtensions = []string{
	"exe", "scr", "bat", "cmd", "ps1", "vbs", "wsf", "hta", "jar", "msi", "msp",
	"reg", "dll", "pif", "com", "cpl", "inf", "apk", "ipa", "dmg", "pkg", "deb", "rpm",
}

// Keyword sets scanned over the lowercase URL (trust over host only).
var (
	defaultLoginKeywords = []string{
		"login", "signin", "sign-in", "account", "verify", "auth", "authenticate",
		"confirm", "update",
	}
	defaultTrustKeywords = []string{
		"secure", "safe", "trust", "bank", "protected", "official",
	}
	defaultPaymentKeywords = []string{
		"pay", "payment", "wallet", "upi", "gpay", "paytm", "bhim", "razorpay",
		"phonepay",
	}
	defaultLureKeywords = []string{
		"free", "bonus", "prize", "winner", "giveaway", "reward", "claim", "gift",
		"lucky", "congratulations",
	}
	defaultFraudKeywords = []string{
		"kyc", "refund", "tax", "block", "suspend", "urgent", "helpdesk",
		"support", "care", "alert",
	}
)

// fraudVPAPrefixes flag payment-address prefixes engineered to look like
// official refund/KYC flows. A narrower set than the URL fraud keywords.
var fraudVPAPrefixes = []string{
	"refund", "tax", "prize", "block", "kyc", "urgent", "helpdesk", "support", "care",
}

// Double-extension detection: a benign document extension immediately
// followed by an executable one ("invoice.pdf.exe").
var (
	benignDoubleExts    = []string{"pdf", "doc", "docx", "xls", "jpg", "jpeg", "png", "gif", "mp4", "zip"}
	dangerousDoubleExts = []string{"exe", "js", "php", "bat", "ps1", "vbs", "cmd", "scr", "dll"}
)

// adminPaths are management endpoints rarely linked to legitimately.
var adminPaths = []string{"/wp-admin/", "/admin/", "/phpmyadmin/", "/cgi-bin/"}

// openRedirectParams are query parameter prefixes that carry a full URL,
// the signature of open-redirect abuse.
var openRedirectParams = []string{
	"redirect=http", "returnurl=http", "continue=http", "next=http",
	"goto=http", "url=http",
}

// tableSet is membership-test storage for a string table.
type tableSet map[string]struct{}

func (s tableSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func makeSet(entries []string) tableSet {
	s := make(tableSet, len(entries))
	for _, e := range entries {
		s[e] = struct{}{}
	}
	return s
}

// tables bundles the fully-built lookup structures. A single instance is
// built on first use and shared read-only by every extraction call.
type tables struct {
	brands []string // ordered: distance scans iterate this

	suspiciousTLDs  tableSet
	legitUPIHandles tableSet
	shorteners      tableSet
	dangerousExts   tableSet

	loginKeywords   []string
	trustKeywords   []string
	paymentKeywords []string
	lureKeywords    []string
	fraudKeywords   []string
	hostTrustScan   []string // trust + login, checked against the host
	allKeywords     []string // concatenation for the density score
}

var (
	activeTables *tables
	tablesOnce   sync.Once
)

// getTables returns the process-wide table bundle, applying any YAML
// overrides found on first use.
func getTables() *tables {
	tablesOnce.Do(func() {
		activeTables = buildTables(loadTableOverrides())
	})
	return activeTables
}

func buildTables(o *TableOverrides) *tables {
	t := &tables{
		brands:          defaultBrands,
		loginKeywords:   defaultLoginKeywords,
		trustKeywords:   defaultTrustKeywords,
		paymentKeywords: defaultPaymentKeywords,
		lureKeywords:    defaultLureKeywords,
		fraudKeywords:   defaultFraudKeywords,
	}
	if o != nil {
		if len(o.Brands) > 0 {
			t.brands = o.Brands
		}
		t.brands = append(t.brands, o.ExtraBrands...)
		if len(o.LoginKeywords) > 0 {
			t.loginKeywords = o.LoginKeywords
		}
		if len(o.TrustKeywords) > 0 {
			t.trustKeywords = o.TrustKeywords
		}
		if len(o.PaymentKeywords) > 0 {
			t.paymentKeywords = o.PaymentKeywords
		}
		if len(o.LureKeywords) > 0 {
			t.lureKeywords = o.LureKeywords
		}
		if len(o.FraudKeywords) > 0 {
			t.fraudKeywords = o.FraudKeywords
		}
	}

	t.suspiciousTLDs = makeSet(suspiciousTLDs)
	t.legitUPIHandles = makeSet(legitUPIHandles)
	t.shorteners = makeSet(shortenerDomains)
	t.dangerousExts = makeSet(dangerousExtensions)

	t.hostTrustScan = append(append([]string{}, t.trustKeywords...), t.loginKeywords...)
	t.allKeywords = concat(t.loginKeywords, t.trustKeywords, t.paymentKeywords,
		t.lureKeywords, t.fraudKeywords)
	return t
}

func concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Brands returns the active brand table in scan order.
func Brands() []string {
	return getTables().brands
}

// IsDangerousExtension reports whether ext (lowercase, no leading dot) is in
// the dangerous-extension table.
func IsDangerousExtension(ext string) bool {
	return getTables().dangerousExts.has(ext)
}

// IsLegitUPIHandle reports whether handle is an issued PSP handle.
func IsLegitUPIHandle(handle string) bool {
	return getTables().legitUPIHandles.has(handle)
}

// IsSuspiciousTLD reports whether tld is in the high-abuse TLD table.
func IsSuspiciousTLD(tld string) bool {
	return getTables().suspiciousTLDs.has(tld)
}

// IsShortenerDomain reports whether a registered domain is a known URL
// shortener.
func IsShortenerDomain(domain string) bool {
	return getTables().shorteners.has(domain)
}
