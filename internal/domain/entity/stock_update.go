package entity

import "time"

// StockUpdate es una entrada del historial de correcciones manuales de stock.
// Solo la corrección explícita escribe aquí; los descuentos por venta no.
// Append-only: no existe update ni delete sobre este historial.
type StockUpdate struct {
	ID          int64
	ProductID   int64
	ProductName string // denormalizado para el listado del historial
	OldStock    int
	NewStock    int
	UpdatedBy   string
	CreatedAt   time.Time
}
