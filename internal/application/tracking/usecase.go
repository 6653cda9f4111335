package tracking

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// EventLedgerUseCase registra eventos de custodia de forma transaccional y
// reconstruye historiales. Invariante central: current_status del producto
// siempre es la proyección de su evento más reciente por (timestamp, seq),
// y nunca se observa un evento sin su actualización de estado (ni al revés).
type EventLedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	eventRepo   repository.EventRepository
	clock       monotonicClock
}

// NewEventLedgerUseCase construye el caso de uso.
func NewEventLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	eventRepo repository.EventRepository,
) *EventLedgerUseCase {
	return &EventLedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		eventRepo:   eventRepo,
	}
}

// Append valida el tipo de evento, asigna timestamp de servidor y, dentro de
// una sola transacción: bloquea la fila del producto (FOR UPDATE), persiste el
// evento y proyecta el estado sobre el producto. Appends concurrentes sobre el
// mismo producto se serializan por el bloqueo de fila; productos distintos no
// contienden.
func (uc *EventLedgerUseCase) Append(ctx context.Context, in dto.AppendEventRequest) (*dto.EventResponse, error) {
	eventType, ok := entity.ParseEventType(in.EventType)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}

	// Verificación temprana de existencia: evita abrir transacción para un
	// producto inexistente. La verificación definitiva es el FOR UPDATE de abajo.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var event *entity.Event
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		eventRepo repository.EventRepository,
	) error {
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		// El timestamp se asigna con el lock de fila ya tomado: el orden de
		// bloqueo, de timestamps y de seq coinciden, así el estado final
		// siempre corresponde al evento máximo por (timestamp, seq).
		event = &entity.Event{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      eventType,
			Location:  in.Location,
			Notes:     in.Notes,
			Timestamp: uc.clock.Now(),
		}
		if err := eventRepo.Create(event); err != nil {
			return err
		}
		return productRepo.SetStatus(in.ProductID, event.StatusProjection(), event.Timestamp)
	})
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// History devuelve el historial completo del producto ascendente por
// (timestamp, seq). Producto sin eventos -> lista vacía, no error.
func (uc *EventLedgerUseCase) History(ctx context.Context, productID string) ([]dto.EventResponse, error) {
	events, err := uc.eventRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// HistoryPage devuelve eventos descendente por recencia con paginación
// (vista de actividad reciente). Producto desconocido -> lista vacía, no error:
// la existencia la valida el caller cuando la necesita.
func (uc *EventLedgerUseCase) HistoryPage(ctx context.Context, productID string, limit, offset int) (*dto.EventListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	events, err := uc.eventRepo.PageByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.EventListResponse{
		Items: toEventResponses(events),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ProductWithHistory devuelve el producto junto con su historial ascendente.
// Devuelve nil si el producto no existe (el handler lo traduce a 404).
func (uc *EventLedgerUseCase) ProductWithHistory(ctx context.Context, productID string) (*dto.ProductHistoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	events, err := uc.eventRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductHistoryResponse{
		ProductResponse: dto.ProductResponse{
			ID:            product.ID,
			Name:          product.Name,
			Description:   product.Description,
			SKU:           product.SKU,
			CurrentStatus: product.CurrentStatus,
			LastUpdated:   product.LastUpdated,
			CreatedAt:     product.CreatedAt,
		},
		Events: toEventResponses(events),
	}, nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		EventType: string(e.Type),
		Location:  e.Location,
		Notes:     e.Notes,
		Timestamp: e.Timestamp,
	}
}

func toEventResponses(events []*entity.Event) []dto.EventResponse {
	items := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, *toEventResponse(e))
	}
	return items
}
