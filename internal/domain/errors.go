package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrDuplicate          = errors.New("recurso duplicado")
)

// InsufficientStockError indica que la cantidad pedida supera el stock disponible.
// El texto es el que ve el cliente del API, por eso se arma aquí y no en el handler.
type InsufficientStockError struct {
	ProductName string
	Remaining   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Only %d left.", e.ProductName, e.Remaining)
}

// ProductInUseError indica que el producto aparece en líneas de venta y no puede borrarse.
type ProductInUseError struct {
	ProductID int64
}

func (e *ProductInUseError) Error() string {
	return "Cannot delete product that has been used in bills. This product has sales history."
}
