package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de pago aceptados.
const (
	PaymentModeCash   = "cash"
	PaymentModeOnline = "online"
)

// AnonymousCustomer nombre usado cuando el vendedor no captura el del cliente.
const AnonymousCustomer = "Anonymous Customer"

// Bill es una venta cerrada: cabecera más sus líneas.
// Total puede ser la suma calculada de las líneas o un valor pactado por el cajero.
type Bill struct {
	ID           int64
	CustomerName string
	Total        decimal.Decimal
	PaymentMode  string
	CreatedAt    time.Time
	Items        []*BillItem
}

// BillItem es una línea de venta. Price es el precio unitario congelado al momento
// de la venta; cambios posteriores del precio del producto no la afectan.
type BillItem struct {
	ID          int64
	BillID      int64
	ProductID   int64
	ProductName string // denormalizado para listados y el recibo
	Quantity    int
	Price       decimal.Decimal
}

// ValidPaymentMode normaliza el modo de pago: cualquier valor fuera del
// catálogo cae a cash (comportamiento tolerante del punto de venta).
func ValidPaymentMode(mode string) string {
	switch mode {
	case PaymentModeCash, PaymentModeOnline:
		return mode
	default:
		return PaymentModeCash
	}
}
