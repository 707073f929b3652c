package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrHasStock              = errors.New("el código de barras tiene stock")
	ErrInUse                 = errors.New("el recurso está en uso")
)

// InsufficientStockError indica que una salida pide más unidades de las
// disponibles. Lleva el stock actual para que el mensaje al usuario lo muestre.
type InsufficientStockError struct {
	CurrentStock int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente, stock actual: %d", e.CurrentStock)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
