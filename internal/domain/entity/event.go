package entity

import (
	"fmt"
	"time"
)

// EventType tipo de evento de custodia (enumeración cerrada).
type EventType string

// Tipos de evento válidos a lo largo de la cadena de suministro.
const (
	EventManufactured           EventType = "MANUFACTURED"
	EventPackaged               EventType = "PACKAGED"
	EventShippedFromSupplier    EventType = "SHIPPED_FROM_SUPPLIER"
	EventReceivedAtWarehouse    EventType = "RECEIVED_AT_WAREHOUSE"
	EventInTransitToDistributor EventType = "IN_TRANSIT_TO_DISTRIBUTOR"
	EventReceivedByDistributor  EventType = "RECEIVED_BY_DISTRIBUTOR"
	EventShippedToRetailer      EventType = "SHIPPED_TO_RETAILER"
	EventReceivedByRetailer     EventType = "RECEIVED_BY_RETAILER"
	EventOutForDelivery         EventType = "OUT_FOR_DELIVERY"
	EventDeliveredToCustomer    EventType = "DELIVERED_TO_CUSTOMER"
	EventInspectionPassed       EventType = "INSPECTION_PASSED"
	EventInspectionFailed       EventType = "INSPECTION_FAILED"
	EventExceptionLogged        EventType = "EXCEPTION_LOGGED"
)

// eventTypes conjunto cerrado para validación.
var eventTypes = map[EventType]struct{}{
	EventManufactured:           {},
	EventPackaged:               {},
	EventShippedFromSupplier:    {},
	EventReceivedAtWarehouse:    {},
	EventInTransitToDistributor: {},
	EventReceivedByDistributor:  {},
	EventShippedToRetailer:      {},
	EventReceivedByRetailer:     {},
	EventOutForDelivery:         {},
	EventDeliveredToCustomer:    {},
	EventInspectionPassed:       {},
	EventInspectionFailed:       {},
	EventExceptionLogged:        {},
}

// Valid indica si el tipo de evento pertenece a la enumeración cerrada.
func (t EventType) Valid() bool {
	_, ok := eventTypes[t]
	return ok
}

// ParseEventType valida un string contra la enumeración. Retorna false si no es reconocido.
func ParseEventType(s string) (EventType, bool) {
	t := EventType(s)
	return t, t.Valid()
}

// Event es un hecho inmutable de custodia/ubicación que pertenece a exactamente un Product.
// Timestamp lo asigna el ledger (nunca el cliente); Seq es la secuencia de inserción
// asignada por el store y desempata eventos con el mismo Timestamp.
type Event struct {
	ID        string
	ProductID string
	Type      EventType
	Location  string
	Notes     string
	Timestamp time.Time
	Seq       int64
}

// StatusProjection deriva el texto de estado del producto a partir del evento.
func (e Event) StatusProjection() string {
	return fmt.Sprintf("%s at %s", e.Type, e.Location)
}
