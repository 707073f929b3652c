package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool y transacción: los repos aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Mapa de plegado para translate(): vocales acentuadas, diéresis y eñe.
// Debe espejar lo que pkg/search.Fold hace con el término de búsqueda, para
// que ambos lados del LIKE queden sin mayúsculas ni acentos.
const (
	accentedChars = "áéíóúüñÁÉÍÓÚÜÑ"
	unaccentChars = "aeiouunaeiouun"
)

// foldExpr envuelve una columna en translate(lower(...)) para que el LIKE
// compare sin distinguir mayúsculas ni acentos.
func foldExpr(column string) string {
	return "translate(lower(" + column + "), '" + accentedChars + "', '" + unaccentChars + "')"
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
