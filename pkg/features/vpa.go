package features

import "strings"

// VPACandidate is a payment address (prefix@handle) discovered in raw text.
// Both parts are lowercase-normalized.
type VPACandidate struct {
	Prefix string
	Handle string
}

// FindVPACandidates scans text for UPI-style payment address patterns.
// On each '@' it scans backward over alphanumerics and [._-] for the prefix
// and forward over letters for the handle; a pair is accepted when the
// prefix is non-empty and the handle is at least two letters. The scan
// resumes at the handle end, so a matched '@' is never reconsidered.
// Candidates come back in order of appearance.
//
// The forward scan is alphabetic only, so handles containing digits are
// truncated at the first digit. Preserved as observed behavior.
func FindVPACandidates(text string) []VPACandidate {
	var results []VPACandidate
	for i := 0; i < len(text); {
		if text[i] != '@' {
			i++
			continue
		}

		start := i
		for start > 0 && isPrefixByte(text[start-1]) {
			start--
		}
		end := i + 1
		for end < len(text) && isASCIILetter(text[end]) {
			end++
		}

		if start < i && end > i+1 {
			prefix := strings.ToLower(text[start:i])
			handle := strings.ToLower(text[i+1 : end])
			if len(handle) >= 2 {
				results = append(results, VPACandidate{Prefix: prefix, Handle: handle})
			}
		}
		i = end
	}
	return results
}

func isPrefixByte(b byte) bool {
	return isASCIILetter(b) || (b >= '0' && b <= '9') || b == '.' || b == '_' || b == '-'
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
