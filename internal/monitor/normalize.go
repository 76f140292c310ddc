package monitor

import "strings"

var schemes = []string{"https://", "http://"}

// NormalizeURL returns the canonical lookup key of a registered domain. It
// removes a leading "http://" or "https://", then a leading "www.", then
// trailing slashes. Case is preserved. Stripping repeats until nothing changes
// so that NormalizeURL(NormalizeURL(x)) == NormalizeURL(x) for every input.
func NormalizeURL(raw string) string {
	for {
		next := normalizeOnce(raw)
		if next == raw {
			return next
		}
		raw = next
	}
}

func normalizeOnce(s string) string {
	for _, scheme := range schemes {
		if strings.HasPrefix(s, scheme) {
			s = s[len(scheme):]

			break
		}
	}
	s = strings.TrimPrefix(s, "www.")

	return strings.TrimSuffix(s, "/")
}
