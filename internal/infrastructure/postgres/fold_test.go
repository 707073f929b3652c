package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/llantera-api/pkg/search"
)

// sqlFold emula translate(lower(...)) de PostgreSQL sobre el mapa de plegado.
func sqlFold(s string) string {
	from := []rune(accentedChars)
	to := []rune(unaccentChars)
	pairs := make([]string, 0, len(from)*2)
	for i := range from {
		pairs = append(pairs, string(from[i]), string(to[i]))
	}
	return strings.NewReplacer(pairs...).Replace(strings.ToLower(s))
}

// ──────────────────────────────────────────────────────────────────────────────
// Plegado de acentos en la búsqueda por keyword
// ──────────────────────────────────────────────────────────────────────────────

func TestFoldExpr_MapaDePlegadoConsistente(t *testing.T) {
	// translate() exige el mismo número de caracteres en ambos lados.
	require.Equal(t, len([]rune(accentedChars)), len([]rune(unaccentChars)))

	// Cada carácter acentuado del mapa debe plegarse igual que pkg/search.Fold,
	// para que ambos lados del LIKE hablen el mismo alfabeto.
	for _, r := range accentedChars {
		assert.Equal(t, search.Fold(string(r)), sqlFold(string(r)),
			"el plegado SQL y el de search.Fold difieren para %q", string(r))
	}
}

func TestFoldExpr_ColumnaAcentuadaCoincideConTerminoPlegado(t *testing.T) {
	stored := "Neumático Radial 135/70R12"

	for _, term := range []string{"Neumático", "neumatico", "NEUMÁTICO", "  neumático "} {
		keyword := search.Fold(term)
		assert.True(t, strings.Contains(sqlFold(stored), keyword),
			"el término %q plegado (%q) debe coincidir con la columna plegada %q",
			term, keyword, sqlFold(stored))
	}
}

func TestFoldExpr_GeneraTranslateSobreLaColumna(t *testing.T) {
	expr := foldExpr("p.name")
	assert.True(t, strings.HasPrefix(expr, "translate(lower(p.name), '"))
	assert.Contains(t, expr, accentedChars)
	assert.Contains(t, expr, unaccentChars)
}
