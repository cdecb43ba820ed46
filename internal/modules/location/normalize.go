package location

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var postalPattern = regexp.MustCompile(`\d{5}-?\d{3}`)

// NormalizeAddress lowercases, strips diacritics and punctuation, and collapses
// whitespace: "Av. Paulista, 1578 - Bela Vista" -> "av paulista 1578 bela vista".
func NormalizeAddress(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ExtractPostalCode finds the first CEP in s and returns it as digits.
func ExtractPostalCode(s string) (int, bool) {
	m := postalPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	return parsePostal(m)
}

func parsePostal(s string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(digits) != 8 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatPostalCode renders digits as 00000-000.
func FormatPostalCode(code int) string {
	s := strconv.Itoa(code)
	for len(s) < 8 {
		s = "0" + s
	}
	return s[:5] + "-" + s[5:]
}

// containsPhrase reports whether phrase occurs in normalized as a whole-word run.
func containsPhrase(normalized, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+normalized+" ", " "+phrase+" ")
}
