package features

// The 56-slot vector layout. Slot order is a versioned contract with the
// external classifier: the trained model indexes positionally, so any
// reordering or insertion is a breaking change and requires retraining.
// Indices are enumerated here instead of living as bare offsets in the
// assembler, so producer and consumer cannot drift silently.

// VectorSize is the fixed length of every extracted feature vector.
const VectorSize = 56

// Feature slot indices, grouped by semantic family.
const (
	// Group A: Lexical Structure
	FeatURLLength      = 0
	FeatHostLength     = 1
	FeatPathLength     = 2
	FeatQueryLength    = 3
	FeatDotCount       = 4
	FeatHyphenCount    = 5
	FeatUnderscores    = 6
	FeatSlashCount     = 7
	FeatAtCount        = 8
	FeatDigitCount     = 9
	FeatDigitRatio     = 10
	FeatIsHTTPS        = 11
	FeatIPInHost       = 12
	FeatIsPunycode     = 13
	FeatSubdomainDepth = 14
	FeatPortAnomaly    = 15

	// Group B: Information Theory
	FeatURLEntropy         = 16
	FeatHostEntropy        = 17
	FeatPathEntropy        = 18
	FeatHostBigramEntropy  = 19
	FeatHostTrigramEntropy = 20

	// Group C: Brand Similarity
	FeatBrandSpoofFlag    = 21
	FeatBrandDistanceNorm = 22
	FeatBrandSubdomain    = 23

	// Group D: Keyword Signals
	FeatLoginKeyword   = 24
	FeatTrustKeyword   = 25
	FeatPaymentKeyword = 26
	FeatLureKeyword    = 27
	FeatFraudKeyword   = 28
	FeatKeywordDensity = 29
	FeatHyphenInHost   = 30

	// Group E: Obfuscation & Encoding
	FeatDoubleExtension = 31
	FeatPctEncodeRatio  = 32
	FeatHeavyEncoding   = 33
	FeatQueryParamCount = 34
	FeatHasFragment     = 35
	FeatIsDataURI       = 36
	FeatPathTraversal   = 37

	// Group F: Domain Quality
	FeatSuspiciousTLD    = 38
	FeatTLDLength        = 39
	FeatHasSubdomain     = 40
	FeatNumericHost      = 41
	FeatUniqueCharRatio  = 42
	FeatVowelRatio       = 43
	FeatConsonantRun     = 44
	FeatShortenerDomain  = 45
	FeatBase64InQuery    = 46
	FeatPathDepth        = 47

	// Group G: Payment Specific
	FeatVPAPresent    = 48
	FeatVPASuspicious = 49
	FeatUPICollect    = 50

	// Group H: File & Extension Risk
	FeatDangerousExt    = 51
	FeatAdminPath       = 52
	FeatOpenRedirect    = 53
	FeatCharRepeatRatio = 54
	FeatLongHexToken    = 55
)

// slotNames matches the training-side feature list one to one.
var slotNames = [VectorSize]string{
	"url_length", "domain_length", "path_length", "query_length",
	"dot_count", "hyphen_count", "underscore_count", "slash_count",
	"at_count", "digit_count", "digit_ratio", "is_https",
	"ip_in_url", "is_punycode", "subdomain_depth", "port_anomaly",
	"url_entropy", "domain_entropy", "path_entropy",
	"domain_bigram_entropy", "domain_trigram_entropy",
	"brand_spoof_flag", "brand_distance_norm", "brand_in_subdomain_only",
	"has_login_kw", "has_trust_kw_in_domain", "has_payment_kw",
	"has_free_kw", "has_fraud_kw", "keyword_density", "hyphen_in_domain",
	"double_extension", "pct_encoding_ratio", "heavy_encoding",
	"query_param_count", "has_fragment", "is_data_uri", "path_traversal",
	"suspicious_tld", "tld_length", "has_subdomain", "numeric_domain",
	"url_compression_ratio", "vowel_ratio", "max_consonant_run",
	"is_short_url", "base64_in_query", "path_depth",
	"upi_vpa_present", "suspicious_upi_vpa", "upi_collect_request",
	"dangerous_extension", "admin_path", "open_redirect",
	"max_char_repeat_ratio", "hex_token_in_url",
}

// SlotName returns the stable name of a feature slot, or "" for an index
// outside the vector.
func SlotName(i int) string {
	if i < 0 || i >= VectorSize {
		return ""
	}
	return slotNames[i]
}

// SlotNames returns all 56 slot names in contract order.
func SlotNames() []string {
	out := make([]string, VectorSize)
	copy(out, slotNames[:])
	return out
}
