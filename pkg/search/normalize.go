package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un término de búsqueda: minúsculas, sin tildes/diacríticos
// y sin espacios en los extremos. Así "Neumático" y "neumatico" coinciden.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}
