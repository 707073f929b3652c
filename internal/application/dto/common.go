package dto

// Valores de paginación para los listados. El tope evita que un cliente se
// traiga el catálogo completo de una vez.
const (
	DefaultPageLimit = 25
	MaxPageLimit     = 200
)

// PageRequest parámetros de paginación comunes a todos los listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage normaliza límite y offset: aplica el valor por defecto,
// recorta al tope y descarta offsets negativos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse eco de la página servida más el total de filas disponible.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo uniforme de error: un código estable para el frontend
// y un mensaje legible para el operador.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
