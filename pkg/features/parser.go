// Package features implements the Browser Vigilant extraction engine: it
// turns raw URL strings, filenames, and form-action values into fixed-shape
// numeric signals for an external phishing/fraud classifier.
//
// Design principles:
// - TOTAL: every operation accepts any string, including empty, and never fails
// - PURE: no I/O, no shared mutable state, safe for unlimited concurrency
// - FIXED CONTRACT: the 56-slot vector order is versioned and must not drift
package features

import "strings"

// URLParts is the decomposition of a raw URL string. It is built fresh per
// call and never cached. Host and all derived fields are lowercase.
type URLParts struct {
	Scheme   string
	Host     string
	Path     string
	Query    string
	Fragment string

	// Port is the explicit port, valid only when HasPort is true.
	Port    uint16
	HasPort bool

	// Labels are the dot-separated host labels, in order. TLD is the last
	// label; RegisteredDomain joins the last two labels when the host has at
	// least two (a heuristic, not public-suffix-aware); Subdomain joins
	// everything before them.
	Labels           []string
	TLD              string
	RegisteredDomain string
	Subdomain        string
}

// ParseURL decomposes a raw URL by plain string scanning. It is deliberately
// more permissive than net/url: inputs with no scheme, multiple '@' signs, or
// no recognizable structure still produce a usable decomposition instead of
// an error. IPv6 bracket literals are not specially handled.
func ParseURL(raw string) URLParts {
	var p URLParts

	rest := raw
	if pos := strings.Index(raw, "://"); pos >= 0 {
		p.Scheme = strings.ToLower(raw[:pos])
		rest = raw[pos+3:]
	}

	// Fragment first, then query, matching browser address-bar behavior.
	if pos := strings.IndexByte(rest, '#'); pos >= 0 {
		p.Fragment = rest[pos+1:]
		rest = rest[:pos]
	}
	if pos := strings.IndexByte(rest, '?'); pos >= 0 {
		p.Query = rest[pos+1:]
		rest = rest[:pos]
	}

	netloc := rest
	if pos := strings.IndexByte(rest, '/'); pos >= 0 {
		netloc = rest[:pos]
		p.Path = rest[pos:]
	}

	// Strip userinfo. The LAST '@' wins so that obfuscated URLs with several
	// '@' signs resolve to the final authority segment.
	if pos := strings.LastIndexByte(netloc, '@'); pos >= 0 {
		netloc = netloc[pos+1:]
	}

	// A trailing bare colon ("example.com:") is stripped like an empty port.
	host := netloc
	if pos := strings.LastIndexByte(netloc, ':'); pos >= 0 {
		suffix := netloc[pos+1:]
		if suffix == "" || isAllDigits(suffix) {
			host = netloc[:pos]
			if port, ok := parsePort(suffix); ok && len(suffix) > 0 {
				p.Port = port
				p.HasPort = true
			}
		}
	}

	p.Host = strings.ToLower(host)
	p.Labels = strings.Split(p.Host, ".")
	p.TLD = p.Labels[len(p.Labels)-1]
	if len(p.Labels) >= 2 {
		p.RegisteredDomain = strings.Join(p.Labels[len(p.Labels)-2:], ".")
	} else {
		p.RegisteredDomain = p.Host
	}
	if len(p.Labels) > 2 {
		p.Subdomain = strings.Join(p.Labels[:len(p.Labels)-2], ".")
	}

	return p
}

// isAllDigits reports whether s is non-empty and consists only of ASCII
// digits. A non-numeric suffix after ':' is part of the host, not a port.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parsePort converts a digits-only string to a port. Values that overflow
// uint16 degrade to "absent" rather than erroring; the digits are still
// stripped from the host by the caller.
func parsePort(s string) (uint16, bool) {
	var n uint32
	for i := 0; i < len(s); i++ {
		n = n*10 + uint32(s[i]-'0')
		if n > 65535 {
			return 0, false
		}
	}
	return uint16(n), true
}
