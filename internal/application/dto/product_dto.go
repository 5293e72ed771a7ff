package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Price y Stock son punteros para
// distinguir "no enviado" de cero (ambos son obligatorios).
type CreateProductRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	ImageURL string           `json:"image_url"`
}

// UpdateStockRequest corrección manual de stock.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// DeleteProductResponse confirmación de borrado con el producto eliminado.
type DeleteProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
