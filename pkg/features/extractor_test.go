package features

import (
	"strings"
	"testing"
)

func extract(t *testing.T, url string) []float32 {
	t.Helper()
	vec := ExtractFeatures(url)
	if len(vec) != VectorSize {
		t.Fatalf("ExtractFeatures(%q) returned %d slots, want %d", url, len(vec), VectorSize)
	}
	return vec
}

func TestExtractFeaturesAlwaysFullVector(t *testing.T) {
	inputs := []string{
		"",
		"https://example.com",
		"not a url at all",
		"data:text/html,<script>alert(1)</script>",
		"http://1.2.3.4:1337/a/b/c?q=1#f",
		strings.Repeat("a", 100000),
		"://", "@@@", "%%%",
	}
	for _, in := range inputs {
		extract(t, in)
	}
}

func TestLexicalStructureGroup(t *testing.T) {
	url := "https://user@sub.ex-ample.com:1337/a_b/c.html?q=12#frag"
	f := extract(t, url)

	if f[FeatURLLength] != float32(len(url)) {
		t.Errorf("url_length = %v, want %v", f[FeatURLLength], len(url))
	}
	if f[FeatHostLength] != float32(len("sub.ex-ample.com")) {
		t.Errorf("domain_length = %v", f[FeatHostLength])
	}
	if f[FeatIsHTTPS] != 1.0 {
		t.Errorf("is_https = %v, want 1", f[FeatIsHTTPS])
	}
	if f[FeatAtCount] != 1.0 {
		t.Errorf("at_count = %v, want 1", f[FeatAtCount])
	}
	if f[FeatUnderscores] != 1.0 {
		t.Errorf("underscore_count = %v, want 1", f[FeatUnderscores])
	}
	if f[FeatSubdomainDepth] != 1.0 {
		t.Errorf("subdomain_depth = %v, want 1", f[FeatSubdomainDepth])
	}
	if f[FeatPortAnomaly] != 1.0 {
		t.Errorf("port_anomaly = %v, want 1 for port 1337", f[FeatPortAnomaly])
	}
	if f[FeatDigitCount] != 6.0 { // 1337 + 12
		t.Errorf("digit_count = %v, want 6", f[FeatDigitCount])
	}
	// Slashes counted after the scheme separator only.
	if f[FeatSlashCount] != 2.0 {
		t.Errorf("slash_count = %v, want 2", f[FeatSlashCount])
	}
}

func TestStandardPortNotAnomalous(t *testing.T) {
	for _, url := range []string{
		"https://x.com:443/", "http://x.com:80/", "http://x.com:8080/", "https://x.com:8443/",
	} {
		f := extract(t, url)
		if f[FeatPortAnomaly] != 0.0 {
			t.Errorf("port_anomaly = %v for %q, want 0", f[FeatPortAnomaly], url)
		}
	}
}

func TestIPAndPunycodeFlags(t *testing.T) {
	f := extract(t, "http://192.168.1.50/login")
	if f[FeatIPInHost] != 1.0 {
		t.Errorf("ip_in_url = %v, want 1", f[FeatIPInHost])
	}
	if f[FeatNumericHost] != 1.0 {
		t.Errorf("numeric_domain = %v, want 1", f[FeatNumericHost])
	}

	f = extract(t, "https://xn--pypal-4ve.com/")
	if f[FeatIsPunycode] != 1.0 {
		t.Errorf("is_punycode = %v, want 1", f[FeatIsPunycode])
	}
}

func TestInformationTheoryGroup(t *testing.T) {
	f := extract(t, "https://aaaaaaaa.com")
	g := extract(t, "https://x7f9q2kd.com")
	if f[FeatHostEntropy] >= g[FeatHostEntropy] {
		t.Errorf("repeated host entropy %v should be below random host entropy %v",
			f[FeatHostEntropy], g[FeatHostEntropy])
	}
	if e := extract(t, ""); e[FeatURLEntropy] != 0 {
		t.Errorf("empty url entropy = %v, want 0", e[FeatURLEntropy])
	}
}

func TestBrandSimilarityGroup(t *testing.T) {
	// Typosquat one edit away from "paypal".
	f := extract(t, "https://paypa1.com/login")
	if f[FeatBrandSpoofFlag] != 1.0 {
		t.Errorf("brand_spoof_flag = %v, want 1", f[FeatBrandSpoofFlag])
	}
	if !almostEqual32(f[FeatBrandDistanceNorm], 0.1) {
		t.Errorf("brand_distance_norm = %v, want 0.1", f[FeatBrandDistanceNorm])
	}
	if f[FeatLoginKeyword] != 1.0 {
		t.Errorf("has_login_kw = %v, want 1", f[FeatLoginKeyword])
	}

	// Exact brand match is not a spoof.
	f = extract(t, "https://paypal.com")
	if f[FeatBrandSpoofFlag] != 0.0 {
		t.Errorf("exact match brand_spoof_flag = %v, want 0", f[FeatBrandSpoofFlag])
	}
	if f[FeatBrandDistanceNorm] != 0.0 {
		t.Errorf("exact match brand_distance_norm = %v, want 0", f[FeatBrandDistanceNorm])
	}
	if f[FeatBrandSubdomain] != 0.0 {
		t.Errorf("brand_in_subdomain_only = %v, want 0", f[FeatBrandSubdomain])
	}

	// Brand in the subdomain while the registered domain is unrelated.
	f = extract(t, "https://paypal.secure-verify.xyz/login")
	if f[FeatBrandSubdomain] != 1.0 {
		t.Errorf("brand_in_subdomain_only = %v, want 1", f[FeatBrandSubdomain])
	}
	if f[FeatSuspiciousTLD] != 1.0 {
		t.Errorf("suspicious_tld = %v, want 1 for .xyz", f[FeatSuspiciousTLD])
	}
}

func TestKeywordSignalsGroup(t *testing.T) {
	f := extract(t, "http://secure-bank.com/payment?claim=free")
	if f[FeatTrustKeyword] != 1.0 {
		t.Errorf("has_trust_kw_in_domain = %v, want 1", f[FeatTrustKeyword])
	}
	if f[FeatPaymentKeyword] != 1.0 {
		t.Errorf("has_payment_kw = %v, want 1", f[FeatPaymentKeyword])
	}
	if f[FeatLureKeyword] != 1.0 {
		t.Errorf("has_free_kw = %v, want 1", f[FeatLureKeyword])
	}
	if f[FeatHyphenInHost] != 1.0 {
		t.Errorf("hyphen_in_domain = %v, want 1", f[FeatHyphenInHost])
	}

	// Trust keywords only count inside the host.
	f = extract(t, "http://example.com/secure")
	if f[FeatTrustKeyword] != 0.0 {
		t.Errorf("trust kw in path should not set flag, got %v", f[FeatTrustKeyword])
	}

	// Density caps at 1.0 once six distinct keywords hit.
	f = extract(t, "http://secure-login-verify.com/payment-refund?free=1&kyc=1&urgent=1")
	if f[FeatKeywordDensity] != 1.0 {
		t.Errorf("keyword_density = %v, want 1.0", f[FeatKeywordDensity])
	}
}

func TestObfuscationGroup(t *testing.T) {
	f := extract(t, "http://x.com/docs/invoice.pdf.exe")
	if f[FeatDoubleExtension] != 1.0 {
		t.Errorf("double_extension = %v, want 1", f[FeatDoubleExtension])
	}
	if f[FeatDangerousExt] != 1.0 {
		t.Errorf("dangerous_extension = %v, want 1", f[FeatDangerousExt])
	}

	f = extract(t, "http://x.com/a?b=1&c=2&d=3")
	if f[FeatQueryParamCount] != 3.0 {
		t.Errorf("query_param_count = %v, want 3", f[FeatQueryParamCount])
	}
	if g := extract(t, "http://x.com/a"); g[FeatQueryParamCount] != 0.0 {
		t.Errorf("no query should give 0 params, got %v", g[FeatQueryParamCount])
	}

	f = extract(t, "data:text/html,<h1>hi</h1>")
	if f[FeatIsDataURI] != 1.0 {
		t.Errorf("is_data_uri = %v, want 1", f[FeatIsDataURI])
	}

	f = extract(t, "http://x.com/../../etc/passwd")
	if f[FeatPathTraversal] != 1.0 {
		t.Errorf("path_traversal = %v, want 1", f[FeatPathTraversal])
	}
	f = extract(t, "http://x.com/a%2E%2E/b")
	if f[FeatPathTraversal] != 1.0 {
		t.Errorf("encoded path_traversal = %v, want 1", f[FeatPathTraversal])
	}

	f = extract(t, "http://x.com/%41%42%43")
	if f[FeatPctEncodeRatio] <= 0 {
		t.Errorf("pct_encoding_ratio = %v, want > 0", f[FeatPctEncodeRatio])
	}
	if f[FeatHeavyEncoding] <= 0 || f[FeatHeavyEncoding] > 1.0 {
		t.Errorf("heavy_encoding = %v, want in (0,1]", f[FeatHeavyEncoding])
	}
}

func TestDomainQualityGroup(t *testing.T) {
	f := extract(t, "https://bit.ly/3xYz")
	if f[FeatShortenerDomain] != 1.0 {
		t.Errorf("is_short_url = %v, want 1", f[FeatShortenerDomain])
	}

	f = extract(t, "http://x.com/cb?token=aGVsbG8gd29ybGQgdGhpcyBpcyBsb25n")
	if f[FeatBase64InQuery] != 1.0 {
		t.Errorf("base64_in_query = %v, want 1", f[FeatBase64InQuery])
	}
	if g := extract(t, "http://x.com/cb?t=short"); g[FeatBase64InQuery] != 0.0 {
		t.Errorf("short query token flagged as base64: %v", g[FeatBase64InQuery])
	}

	f = extract(t, "http://x.com/a/b/c/d")
	if f[FeatPathDepth] != 4.0 {
		t.Errorf("path_depth = %v, want 4", f[FeatPathDepth])
	}

	f = extract(t, "https://xxxxxxxxxy.xyz")
	if f[FeatCharRepeatRatio] < 0.7 {
		t.Errorf("max_char_repeat_ratio = %v, want high for repeated host", f[FeatCharRepeatRatio])
	}
	if f[FeatVowelRatio] != 0.0 {
		t.Errorf("vowel_ratio = %v, want 0 for vowel-free host label", f[FeatVowelRatio])
	}

	// Non-ASCII letters count toward the ratio denominator: bücher.de has
	// eight letters, two of them vowels.
	f = extract(t, "https://bücher.de")
	if f[FeatVowelRatio] != 0.25 {
		t.Errorf("vowel_ratio = %v, want 0.25 for raw unicode host", f[FeatVowelRatio])
	}
}

func TestPaymentGroup(t *testing.T) {
	// Legitimate handle, clean prefix: present but not suspicious.
	f := extract(t, "upi://pay?pa=merchant@oksbi&pn=Shop")
	if f[FeatVPAPresent] != 1.0 {
		t.Errorf("upi_vpa_present = %v, want 1", f[FeatVPAPresent])
	}
	if f[FeatVPASuspicious] != 0.0 {
		t.Errorf("suspicious_upi_vpa = %v, want 0", f[FeatVPASuspicious])
	}
	if f[FeatUPICollect] != 1.0 {
		t.Errorf("upi_collect_request = %v, want 1", f[FeatUPICollect])
	}

	// Unknown handle is suspicious.
	f = extract(t, "http://pay.me/?vpa=shop@fakebank")
	if f[FeatVPASuspicious] != 1.0 {
		t.Errorf("unknown handle suspicious_upi_vpa = %v, want 1", f[FeatVPASuspicious])
	}

	// Legit handle but fraud-styled prefix is suspicious too.
	f = extract(t, "http://pay.me/?pa=refund-desk@oksbi")
	if f[FeatVPASuspicious] != 1.0 {
		t.Errorf("fraud prefix suspicious_upi_vpa = %v, want 1", f[FeatVPASuspicious])
	}

	if g := extract(t, "https://example.com/about"); g[FeatVPAPresent] != 0.0 {
		t.Errorf("upi_vpa_present = %v for plain url, want 0", g[FeatVPAPresent])
	}
}

func TestFileRiskGroup(t *testing.T) {
	f := extract(t, "http://x.com/wp-admin/setup.php")
	if f[FeatAdminPath] != 1.0 {
		t.Errorf("admin_path = %v, want 1", f[FeatAdminPath])
	}

	f = extract(t, "http://x.com/out?redirect=http://evil.com")
	if f[FeatOpenRedirect] != 1.0 {
		t.Errorf("open_redirect = %v, want 1", f[FeatOpenRedirect])
	}

	f = extract(t, "http://x.com/f/5d41402abc4b2a76b9719d911017c59200000000")
	if f[FeatLongHexToken] != 1.0 {
		t.Errorf("hex_token_in_url = %v, want 1", f[FeatLongHexToken])
	}
	if g := extract(t, "http://x.com/f/5d41402a"); g[FeatLongHexToken] != 0.0 {
		t.Errorf("short hex run flagged: %v", g[FeatLongHexToken])
	}
}

func TestNamedFeatures(t *testing.T) {
	named := NamedFeatures("https://paypa1.com/login")
	if len(named) != VectorSize {
		t.Fatalf("NamedFeatures returned %d entries, want %d", len(named), VectorSize)
	}
	if named["brand_spoof_flag"] != 1.0 {
		t.Errorf("brand_spoof_flag = %v, want 1", named["brand_spoof_flag"])
	}
	if named["url_length"] != float32(len("https://paypa1.com/login")) {
		t.Errorf("url_length mismatch: %v", named["url_length"])
	}
}
