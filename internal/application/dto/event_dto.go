package dto

import "time"

// AppendEventRequest entrada para registrar un evento de custodia contra un producto.
// El timestamp lo asigna el servidor, nunca el cliente.
type AppendEventRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	EventType string `json:"event_type" validate:"required"`
	Location  string `json:"location" validate:"required,min=1,max=200"`
	Notes     string `json:"notes"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	EventType string    `json:"event_type"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventListResponse lista paginada de eventos (más reciente primero).
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
