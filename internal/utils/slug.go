package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases name and joins its ASCII letter and digit runs with
// single hyphens, e.g. "Acme Corp." becomes "acme-corp". It returns "" when
// name has no letters or digits.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
