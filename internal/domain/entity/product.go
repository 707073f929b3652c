package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una llanta del catálogo. El stock no vive aquí: cada
// código de barras del producto lleva su propio contador.
// Las categorías forman un árbol de tres niveles (rin / especificación / marca).
type Product struct {
	ID          string
	Name        string
	Model       string // especificación, ej. 135/70R12
	Category1ID string
	Category2ID string
	Category3ID string
	Price       decimal.Decimal
	Image       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
