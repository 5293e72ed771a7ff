package dto

import "time"

// StockUpdateResponse entrada del historial de correcciones de stock.
type StockUpdateResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	OldStock    int       `json:"old_stock"`
	NewStock    int       `json:"new_stock"`
	UpdatedBy   string    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
}
