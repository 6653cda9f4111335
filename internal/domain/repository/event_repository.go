package repository

import "github.com/jhoicas/Trazabilidad-api/internal/domain/entity"

// EventRepository define el puerto de persistencia para Event (DIP).
// Los eventos son append-only: no hay Update ni Delete.
type EventRepository interface {
	// Create persiste el evento y asigna event.Seq con la secuencia de inserción del store.
	Create(event *entity.Event) error
	// ListByProduct devuelve todos los eventos del producto ascendente por (timestamp, seq).
	ListByProduct(productID string) ([]*entity.Event, error)
	// PageByProduct devuelve eventos del producto descendente por (timestamp, seq)
	// con paginación (vista de actividad reciente). Producto desconocido -> lista vacía.
	PageByProduct(productID string, limit, offset int) ([]*entity.Event, error)
}
