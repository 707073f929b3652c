package repository

import "github.com/jcastro/llantera-api/internal/domain/entity"

// BarcodeFilter filtros para el listado de códigos de barras.
type BarcodeFilter struct {
	ProductID string
	Keyword   string // ya normalizado con pkg/search.Fold
}

// BarcodeListItem fila de listado con datos del producto denormalizados.
type BarcodeListItem struct {
	entity.Barcode
	ProductName  string
	ProductModel string
	ProductImage string
}

// BarcodeRepository es el directorio de códigos de barras: localizar el
// producto dueño y el stock actual, con lectura bloqueada para actualización.
// GetByCodeForUpdate y UpdateStock deben usarse dentro de una transacción:
// el lock de fila serializa operaciones concurrentes sobre el mismo código.
type BarcodeRepository interface {
	GetByCode(code string) (*entity.Barcode, error)
	// GetByCodeForUpdate bloquea la fila (SELECT ... FOR UPDATE) hasta el fin
	// de la transacción. Devuelve nil si el código no existe.
	GetByCodeForUpdate(code string) (*entity.Barcode, error)
	// UpdateStock persiste el nuevo contador y estampa last_inbound_time o
	// last_outbound_time según kind. Solo con el lock de fila tomado.
	UpdateStock(id string, stock int, kind string) error

	Create(b *entity.Barcode) error
	GetByID(id string) (*entity.Barcode, error)
	FindByCodeWithProduct(code string) (*BarcodeListItem, error)
	List(f BarcodeFilter, limit, offset int) ([]*BarcodeListItem, int, error)
	Update(b *entity.Barcode) error
	Delete(id string) error
	CountByProduct(productID string) (int, error)
}
