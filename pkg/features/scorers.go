package features

import "strings"

// AnalyzeFormAction scores a serialized form-action URL against the host of
// the page it was found on. Returns 1.0 for a data: URI action, 0.8 when the
// action posts to a host unrelated to the page, 0.0 otherwise.
//
// "Unrelated" is a bidirectional substring check, which is a known
// imprecision: "evil-paypal.com" contains "paypal.com" and passes, while
// unrelated hosts that happen to share a substring also pass. Preserved as
// observed behavior.
func AnalyzeFormAction(formAction, pageHost string) float32 {
	if formAction == "" {
		return 0.0
	}
	actionLow := strings.ToLower(formAction)
	if strings.HasPrefix(actionLow, "data:") {
		return 1.0
	}

	actionHost := ParseURL(formAction).Host
	if actionHost != "" &&
		!strings.Contains(actionHost, pageHost) &&
		!strings.Contains(pageHost, actionHost) {
		return 0.8
	}
	return 0.0
}

// ScoreFilename rates a download filename 0.0-1.0 by additive risk terms:
//
//	+0.6 dangerous final extension
//	+0.4 dangerous penultimate segment (double-extension pattern)
//	+0.2 Shannon entropy above 4.5 (randomly named payloads)
//	+0.3 brand name present together with a dangerous extension
//
// clamped to 1.0. Entropy is computed on the name as given; lookups use the
// lowercase form.
func ScoreFilename(filename string) float32 {
	low := strings.ToLower(filename)
	var score float32

	ext := low
	if pos := strings.LastIndexByte(low, '.'); pos >= 0 {
		ext = low[pos+1:]
	}
	dangerous := IsDangerousExtension(ext)
	if dangerous {
		score += 0.6
	}

	parts := strings.Split(low, ".")
	if len(parts) >= 3 && IsDangerousExtension(parts[len(parts)-2]) {
		score += 0.4
	}

	if ShannonEntropy(filename) > 4.5 {
		score += 0.2
	}

	if dangerous && containsAny(low, Brands()) {
		score += 0.3
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
