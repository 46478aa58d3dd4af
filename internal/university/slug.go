package university

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// Slug transliterates name to ASCII, lowercases it and joins the remaining
// alphanumeric runs with hyphens: "Université Laval" -> "universite-laval",
// "北京大学" -> "bei-jing-da-xue".
func Slug(name string) string {
	// Compose first so decomposed accents transliterate with their base letter.
	ascii := strings.ToLower(unidecode.Unidecode(norm.NFC.String(name)))

	var b strings.Builder
	pendingDash := false
	for _, r := range ascii {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
