package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify reduz um nome a um identificador de login: minúsculas, sem acento,
// separadores não alfanuméricos viram hífen. "João Víctor" -> "joao-victor".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	semAcento, _, err := transform.String(t, s)
	if err != nil {
		semAcento = s
	}
	var b strings.Builder
	anterior := '-'
	for _, r := range strings.ToLower(semAcento) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			anterior = r
		} else if anterior != '-' {
			b.WriteRune('-')
			anterior = '-'
		}
	}
	return strings.Trim(b.String(), "-")
}
