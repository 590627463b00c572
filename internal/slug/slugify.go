package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold strips diacritics: "Crème Brûlée" -> "Creme Brulee".
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a label into a lowercase, hyphen-separated, URL-safe token
// of at most maxLen bytes. Returns "" when the label has no usable characters.
func Slugify(label string, maxLen int) string {
	folded, _, err := transform.String(fold, label)
	if err != nil {
		folded = label
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return truncate(b.String(), maxLen)
}

// truncate cuts s to maxLen, preferring the last hyphen boundary in the
// second half of the allowed length.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := s[:maxLen]
	if s[maxLen] != '-' {
		if i := strings.LastIndexByte(cut, '-'); i >= maxLen/2 {
			cut = cut[:i]
		}
	}
	return strings.Trim(cut, "-")
}
