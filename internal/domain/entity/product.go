package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la tienda.
// Stock es unidades disponibles; Price es el precio de venta vigente
// (las líneas de venta congelan su propio precio, ver BillItem).
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Stock     int
	ImageURL  string // opcional, URL externa
	CreatedAt time.Time
}
