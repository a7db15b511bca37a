// Package normalize normaliza términos de búsqueda: minúsculas y sin tildes,
// para que "Machimbre Cedro" y "machimbré cédro" coincidan en los listados.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas, sin marcas diacríticas y sin espacios sobrantes.
// Si la transformación falla (entrada no UTF-8 válida), devuelve s en minúsculas.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
