package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItemRequest línea pedida por el cajero.
type BillItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateBillRequest venta a registrar. CustomerName es opcional (vacío → cliente
// anónimo), PaymentMode cae a cash si no es válido y CustomTotal, si viene,
// reemplaza al total calculado (descuentos pactados en mostrador).
type CreateBillRequest struct {
	CustomerName string           `json:"customerName"`
	Items        []BillItemRequest `json:"items"`
	PaymentMode  string           `json:"paymentMode"`
	CustomTotal  *decimal.Decimal `json:"customTotal"`
}

// BillItemResponse línea de venta con el precio congelado al momento de la venta.
type BillItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// BillResponse cabecera de la venta.
type BillResponse struct {
	ID           int64              `json:"id"`
	CustomerName string             `json:"customer_name"`
	Total        decimal.Decimal    `json:"total"`
	PaymentMode  string             `json:"payment_mode"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []BillItemResponse `json:"items"`
}

// CreateBillResponse respuesta de creación: cabecera y líneas recién insertadas.
type CreateBillResponse struct {
	Bill  BillResponse       `json:"bill"`
	Items []BillItemResponse `json:"items"`
}
