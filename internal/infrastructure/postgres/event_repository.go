package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

const eventColumns = `id, seq, product_id, event_type, location, notes, ts`

// EventRepo implementación del puerto EventRepository sobre PostgreSQL (usable con pool o tx).
// La tabla events es append-only: este adaptador no expone UPDATE ni DELETE.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste el evento. El RETURNING recupera seq (BIGSERIAL), la
// secuencia de inserción que desempata eventos con el mismo timestamp.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (id, product_id, event_type, location, notes, ts)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		event.ID, event.ProductID, string(event.Type), event.Location, event.Notes, event.Timestamp,
	).Scan(&event.Seq)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListByProduct devuelve todos los eventos del producto ascendente por (ts, seq).
func (r *EventRepo) ListByProduct(productID string) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE product_id = $1 ORDER BY ts ASC, seq ASC`
	return r.queryEvents(query, productID)
}

// PageByProduct devuelve eventos descendente por (ts, seq) con paginación.
// Producto desconocido o sin eventos -> lista vacía, no error.
func (r *EventRepo) PageByProduct(productID string, limit, offset int) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE product_id = $1 ORDER BY ts DESC, seq DESC LIMIT $2 OFFSET $3`
	return r.queryEvents(query, productID, limit, offset)
}

func (r *EventRepo) queryEvents(query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Event, 0)
	for rows.Next() {
		var e entity.Event
		var eventType string
		if err := rows.Scan(&e.ID, &e.Seq, &e.ProductID, &eventType, &e.Location, &e.Notes, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Type = entity.EventType(eventType)
		list = append(list, &e)
	}
	return list, rows.Err()
}
