package dto

import "time"

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
}

// UpdateProductRequest entrada para actualizar un producto (patch parcial).
// SKU es mutable pero su unicidad se verifica; CurrentStatus nunca se toca por esta vía.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	SKU         *string `json:"sku" validate:"omitempty,min=1,max=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SKU           string    `json:"sku"`
	CurrentStatus string    `json:"current_status"`
	LastUpdated   time.Time `json:"last_updated"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductHistoryResponse producto con su historial completo ascendente de eventos.
type ProductHistoryResponse struct {
	ProductResponse
	Events []EventResponse `json:"events"`
}
