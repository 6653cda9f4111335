package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

func TestParseEventType_ValoresCerrados(t *testing.T) {
	valid := []string{
		"MANUFACTURED", "PACKAGED", "SHIPPED_FROM_SUPPLIER", "RECEIVED_AT_WAREHOUSE",
		"IN_TRANSIT_TO_DISTRIBUTOR", "RECEIVED_BY_DISTRIBUTOR", "SHIPPED_TO_RETAILER",
		"RECEIVED_BY_RETAILER", "OUT_FOR_DELIVERY", "DELIVERED_TO_CUSTOMER",
		"INSPECTION_PASSED", "INSPECTION_FAILED", "EXCEPTION_LOGGED",
	}
	for _, s := range valid {
		et, ok := entity.ParseEventType(s)
		assert.True(t, ok, "%s debe ser reconocido", s)
		assert.Equal(t, entity.EventType(s), et)
	}

	for _, s := range []string{"", "manufactured", "LOST", "SHIPPED"} {
		_, ok := entity.ParseEventType(s)
		assert.False(t, ok, "%q no debe ser reconocido", s)
	}
}

func TestStatusProjection_Formato(t *testing.T) {
	e := entity.Event{Type: entity.EventShippedFromSupplier, Location: "Warehouse A"}
	assert.Equal(t, "SHIPPED_FROM_SUPPLIER at Warehouse A", e.StatusProjection())
}
