// Package slug converts human-entered identifiers into canonical primary keys.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the alphanumeric words of a slug.
const Separator = '-'

// letters with no combining-mark decomposition
var transliterations = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ł': "l",
	'þ': "th",
	'ð': "d",
	'ı': "i",
	'&': " and ",
}

// Normalize returns the canonical slug of s: lowercase ASCII letters and digits
// joined by single hyphens, with diacritics folded and every other character
// treated as a word break. Leading and trailing separators are trimmed.
// Normalize is total and idempotent.
func Normalize(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	write := func(r rune) {
		if pending && b.Len() > 0 {
			b.WriteRune(Separator)
		}
		pending = false
		b.WriteRune(r)
	}

	for _, r := range strings.ToLower(folded) {
		if sub, ok := transliterations[r]; ok {
			for _, sr := range sub {
				if sr == ' ' {
					pending = true
					continue
				}
				write(sr)
			}
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			write(r)
			continue
		}
		pending = true
	}
	return b.String()
}
