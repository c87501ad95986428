package features

import (
	"math"
	"strings"
	"unicode"
)

// ShannonEntropy returns the byte-frequency Shannon entropy of s in bits:
// H = -Σ p(b)·log2(p(b)). High entropy (>4.5 for filenames, >5.5 for long
// text) indicates randomized or machine-generated content. Empty input
// returns 0.
func ShannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	var freq [256]int
	for i := 0; i < len(s); i++ {
		freq[s[i]]++
	}
	n := float64(len(s))
	entropy := 0.0
	for _, c := range freq {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// NgramEntropy returns the Shannon entropy of the frequency distribution of
// all contiguous character windows of length n. Character granularity, not
// byte: a multi-byte rune counts as one symbol. Inputs shorter than n
// return 0.
func NgramEntropy(s string, n int) float64 {
	runes := []rune(s)
	if len(runes) < n {
		return 0
	}
	freq := make(map[string]int)
	for i := 0; i+n <= len(runes); i++ {
		freq[string(runes[i:i+n])]++
	}
	total := float64(len(runes) - n + 1)
	entropy := 0.0
	for _, c := range freq {
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Levenshtein returns the edit distance between a and b using the
// Wagner-Fischer algorithm with two rolling rows, O(min(|a|,|b|)) space.
// Case-sensitive on the strings given.
func Levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	m, n := len(ar), len(br)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[n]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// MinBrandDistance returns the minimum edit distance between the lowercase
// first label of domain and every known brand name. 0 means exact match.
func MinBrandDistance(domain string) int {
	core := domain
	if pos := strings.IndexByte(domain, '.'); pos >= 0 {
		core = domain[:pos]
	}
	core = strings.ToLower(core)

	best := 99
	for _, b := range Brands() {
		if d := Levenshtein(core, b); d < best {
			best = d
		}
	}
	return best
}

// MaxConsecutiveConsonants returns the longest run of alphabetic non-vowel
// characters in s, case-insensitive. Long runs indicate gibberish domains.
func MaxConsecutiveConsonants(s string) int {
	maxRun, cur := 0, 0
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) && !strings.ContainsRune("aeiou", r) {
			cur++
			if cur > maxRun {
				maxRun = cur
			}
		} else {
			cur = 0
		}
	}
	return maxRun
}

// CountPercentEncoded counts non-overlapping occurrences of '%' followed by
// two hex digits, scanning left to right. A match advances the scan past all
// three characters.
func CountPercentEncoded(text string) int {
	count := 0
	for i := 0; i+2 < len(text); {
		if text[i] == '%' && isHexDigit(text[i+1]) && isHexDigit(text[i+2]) {
			count++
			i += 3
		} else {
			i++
		}
	}
	return count
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// LooksLikeIP reports whether host is a dotted-quad IPv4 address: exactly
// four dot-separated parts, each parsing as 0-255. IPv6 literals are not
// recognized.
func LooksLikeIP(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if !isAllDigits(part) || len(part) > 3 {
			return false
		}
		n := 0
		for i := 0; i < len(part); i++ {
			n = n*10 + int(part[i]-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}
