package entity

import "time"

// Barcode representa una unidad de almacenaje física: cada código de barras
// pertenece a un producto y lleva su propio contador de stock (invariante >= 0).
// El contador solo lo muta el motor de movimientos; nunca se borra con stock > 0.
type Barcode struct {
	ID           string
	Code         string // código de barras, único
	ProductID    string
	Stock        int
	Location     string // ubicación en bodega, opcional
	SupplierCode string
	Remark       string
	LastInbound  *time.Time
	LastOutbound *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
