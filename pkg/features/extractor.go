package features

import (
	"strings"
	"unicode"
)

// ExtractFeatures converts a raw URL string into the fixed 56-slot feature
// vector consumed by the classifier. Total for any input, including "";
// all ratios divide by a denominator floored at 1. The slot layout is
// defined in schema.go and must not change without retraining.
func ExtractFeatures(url string) []float32 {
	f := make([]float32, VectorSize)
	t := getTables()
	p := ParseURL(url)
	low := strings.ToLower(url)

	host := p.Host
	path := p.Path
	query := p.Query
	domain := p.RegisteredDomain
	pathLow := strings.ToLower(path)

	// === GROUP A: Lexical Structure ===
	f[FeatURLLength] = float32(len(url))
	f[FeatHostLength] = float32(len(host))
	f[FeatPathLength] = float32(len(path))
	f[FeatQueryLength] = float32(len(query))
	f[FeatDotCount] = float32(strings.Count(url, "."))
	f[FeatHyphenCount] = float32(strings.Count(url, "-"))
	f[FeatUnderscores] = float32(strings.Count(url, "_"))
	noProto := url
	if pos := strings.Index(url, "://"); pos >= 0 {
		noProto = url[pos+3:]
	}
	f[FeatSlashCount] = float32(strings.Count(noProto, "/"))
	f[FeatAtCount] = float32(strings.Count(url, "@"))
	digits := 0
	for i := 0; i < len(url); i++ {
		if url[i] >= '0' && url[i] <= '9' {
			digits++
		}
	}
	f[FeatDigitCount] = float32(digits)
	f[FeatDigitRatio] = float32(digits) / float32(max1(len(url)))
	f[FeatIsHTTPS] = boolFeat(p.Scheme == "https")
	f[FeatIPInHost] = boolFeat(LooksLikeIP(host))
	f[FeatIsPunycode] = boolFeat(strings.Contains(host, "xn--"))
	if depth := len(p.Labels) - 2; depth > 0 {
		f[FeatSubdomainDepth] = float32(depth)
	}
	if p.HasPort {
		switch p.Port {
		case 80, 443, 8080, 8443:
		default:
			f[FeatPortAnomaly] = 1.0
		}
	}

	// === GROUP B: Information Theory ===
	f[FeatURLEntropy] = float32(ShannonEntropy(url))
	f[FeatHostEntropy] = float32(ShannonEntropy(host))
	f[FeatPathEntropy] = float32(ShannonEntropy(path))
	f[FeatHostBigramEntropy] = float32(NgramEntropy(host, 2))
	f[FeatHostTrigramEntropy] = float32(NgramEntropy(host, 3))

	// === GROUP C: Brand Similarity ===
	minDist := MinBrandDistance(domain)
	f[FeatBrandSpoofFlag] = boolFeat(minDist > 0 && minDist <= 2)
	if minDist > 10 {
		minDist = 10
	}
	f[FeatBrandDistanceNorm] = float32(minDist) / 10.0
	regCore := domain
	if pos := strings.IndexByte(domain, '.'); pos >= 0 {
		regCore = domain[:pos]
	}
	brandInSub, brandInReg := false, false
	for _, b := range t.brands {
		if !brandInSub && strings.Contains(p.Subdomain, b) {
			brandInSub = true
		}
		if !brandInReg && strings.Contains(regCore, b) {
			brandInReg = true
		}
	}
	f[FeatBrandSubdomain] = boolFeat(brandInSub && !brandInReg)

	// === GROUP D: Keyword Signals ===
	f[FeatLoginKeyword] = boolFeat(containsAny(low, t.loginKeywords))
	f[FeatTrustKeyword] = boolFeat(containsAny(host, t.hostTrustScan))
	f[FeatPaymentKeyword] = boolFeat(containsAny(low, t.paymentKeywords))
	f[FeatLureKeyword] = boolFeat(containsAny(low, t.lureKeywords))
	f[FeatFraudKeyword] = boolFeat(containsAny(low, t.fraudKeywords))
	hits := 0
	for _, k := range t.allKeywords {
		if strings.Contains(low, k) {
			hits++
		}
	}
	density := float32(hits) / 6.0
	if density > 1.0 {
		density = 1.0
	}
	f[FeatKeywordDensity] = density
	f[FeatHyphenInHost] = boolFeat(strings.Contains(host, "-"))

	// === GROUP E: Obfuscation & Encoding ===
	f[FeatDoubleExtension] = boolFeat(hasDoubleExtension(pathLow))
	pct := CountPercentEncoded(url)
	f[FeatPctEncodeRatio] = float32(pct) / float32(max1(len(url)))
	heavyDenom := float32(len(url)) / 3.0
	if heavyDenom < 1.0 {
		heavyDenom = 1.0
	}
	heavy := float32(pct) / heavyDenom
	if heavy > 1.0 {
		heavy = 1.0
	}
	f[FeatHeavyEncoding] = heavy
	if query != "" {
		f[FeatQueryParamCount] = float32(strings.Count(query, "&") + 1)
	}
	f[FeatHasFragment] = boolFeat(p.Fragment != "")
	f[FeatIsDataURI] = boolFeat(strings.HasPrefix(low, "data:"))
	f[FeatPathTraversal] = boolFeat(strings.Contains(path, "..") || strings.Contains(low, "%2e%2e"))

	// === GROUP F: Domain Quality ===
	f[FeatSuspiciousTLD] = boolFeat(t.suspiciousTLDs.has(p.TLD))
	f[FeatTLDLength] = float32(len(p.TLD))
	f[FeatHasSubdomain] = boolFeat(p.Subdomain != "")
	f[FeatNumericHost] = boolFeat(isDigitsAndDots(host))
	uniq := make(map[rune]struct{})
	for _, r := range url {
		uniq[r] = struct{}{}
	}
	f[FeatUniqueCharRatio] = float32(len(uniq)) / float32(max1(len(url)))
	vowels, alpha := 0, 0
	for _, r := range host {
		if unicode.IsLetter(r) {
			alpha++
			if strings.ContainsRune("aeiou", r) {
				vowels++
			}
		}
	}
	f[FeatVowelRatio] = float32(vowels) / float32(max1(alpha))
	f[FeatConsonantRun] = float32(MaxConsecutiveConsonants(host))
	f[FeatShortenerDomain] = boolFeat(t.shorteners.has(domain))
	f[FeatBase64InQuery] = boolFeat(hasBase64Run(query, 20))
	f[FeatPathDepth] = float32(strings.Count(path, "/"))

	// === GROUP G: Payment Specific ===
	vpas := FindVPACandidates(url)
	f[FeatVPAPresent] = boolFeat(len(vpas) > 0)
	for _, v := range vpas {
		if !t.legitUPIHandles.has(v.Handle) || containsAny(v.Prefix, fraudVPAPrefixes) {
			f[FeatVPASuspicious] = 1.0
			break
		}
	}
	f[FeatUPICollect] = boolFeat(strings.Contains(low, "upi://pay") ||
		(strings.Contains(low, "pa=") && strings.Contains(low, "@")) ||
		strings.Contains(low, "vpa="))

	// === GROUP H: File & Extension Risk ===
	f[FeatDangerousExt] = boolFeat(t.dangerousExts.has(pathExtension(pathLow)))
	f[FeatAdminPath] = boolFeat(containsAny(low, adminPaths))
	f[FeatOpenRedirect] = boolFeat(containsAny(low, openRedirectParams))
	f[FeatCharRepeatRatio] = float32(maxRuneRepeat(host)) / float32(max1(len(host)))
	f[FeatLongHexToken] = boolFeat(hasHexRun(low, 32))

	return f
}

// NamedFeatures pairs every slot with its stable name, for debugging output
// and API responses where positional vectors are too easy to misread.
func NamedFeatures(url string) map[string]float32 {
	vec := ExtractFeatures(url)
	out := make(map[string]float32, VectorSize)
	for i, v := range vec {
		out[slotNames[i]] = v
	}
	return out
}

func boolFeat(b bool) float32 {
	if b {
		return 1.0
	}
	return 0.0
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func isDigitsAndDots(host string) bool {
	for i := 0; i < len(host); i++ {
		c := host[i]
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}

func hasDoubleExtension(pathLow string) bool {
	for _, benign := range benignDoubleExts {
		for _, danger := range dangerousDoubleExts {
			if strings.Contains(pathLow, "."+benign+"."+danger) {
				return true
			}
		}
	}
	return false
}

// hasBase64Run reports a run of at least minLen base64-alphabet bytes.
func hasBase64Run(s string, minLen int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			c == '+' || c == '/' || c == '=' {
			run++
			if run >= minLen {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// hasHexRun reports a run of at least minLen hex digits, the shape of an
// embedded MD5/SHA token.
func hasHexRun(s string, minLen int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if isHexDigit(s[i]) {
			run++
			if run >= minLen {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// pathExtension returns the text after the last '.' of the path (the whole
// path when it has no dot), trimmed of any stray query or fragment remnant.
func pathExtension(pathLow string) string {
	ext := pathLow
	if pos := strings.LastIndexByte(pathLow, '.'); pos >= 0 {
		ext = pathLow[pos+1:]
	}
	if pos := strings.IndexByte(ext, '?'); pos >= 0 {
		ext = ext[:pos]
	}
	if pos := strings.IndexByte(ext, '#'); pos >= 0 {
		ext = ext[:pos]
	}
	return ext
}

func maxRuneRepeat(s string) int {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int)
	maxCount := 0
	for _, r := range s {
		counts[r]++
		if counts[r] > maxCount {
			maxCount = counts[r]
		}
	}
	return maxCount
}
