package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/access"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// Tabla completa (rol, operación) según la política fija.
func TestAllowed_TablaCompleta(t *testing.T) {
	cases := []struct {
		role entity.Role
		op   access.Operation
		want bool
	}{
		// supplier: escribe productos, no eventos
		{entity.RoleSupplier, access.OpRegisterProduct, true},
		{entity.RoleSupplier, access.OpUpdateProduct, true},
		{entity.RoleSupplier, access.OpAppendEvent, false},
		{entity.RoleSupplier, access.OpReadProduct, true},
		{entity.RoleSupplier, access.OpReadHistory, true},
		// distributor: escribe eventos, no productos
		{entity.RoleDistributor, access.OpRegisterProduct, false},
		{entity.RoleDistributor, access.OpUpdateProduct, false},
		{entity.RoleDistributor, access.OpAppendEvent, true},
		{entity.RoleDistributor, access.OpReadProduct, true},
		{entity.RoleDistributor, access.OpReadHistory, true},
		// viewer: solo lectura
		{entity.RoleViewer, access.OpRegisterProduct, false},
		{entity.RoleViewer, access.OpUpdateProduct, false},
		{entity.RoleViewer, access.OpAppendEvent, false},
		{entity.RoleViewer, access.OpReadProduct, true},
		{entity.RoleViewer, access.OpReadHistory, true},
		// admin: superset, puede todo
		{entity.RoleAdmin, access.OpRegisterProduct, true},
		{entity.RoleAdmin, access.OpUpdateProduct, true},
		{entity.RoleAdmin, access.OpAppendEvent, true},
		{entity.RoleAdmin, access.OpReadProduct, true},
		{entity.RoleAdmin, access.OpReadHistory, true},
	}
	for _, tc := range cases {
		got := access.Allowed(tc.role, tc.op)
		assert.Equal(t, tc.want, got, "role=%s op=%s", tc.role, tc.op)
	}
}

// Un rol fuera de la enumeración cerrada nunca es autorizado.
func TestAllowed_RolDesconocidoDenegado(t *testing.T) {
	assert.False(t, access.Allowed(entity.Role("superuser"), access.OpReadProduct))
	assert.False(t, access.Allowed(entity.Role(""), access.OpReadProduct))
}

// Un usuario deshabilitado es denegado en toda operación, incluso siendo admin.
func TestCan_DeshabilitadoSiempreDenegado(t *testing.T) {
	ops := []access.Operation{
		access.OpRegisterProduct, access.OpUpdateProduct,
		access.OpAppendEvent, access.OpReadProduct, access.OpReadHistory,
	}
	for _, role := range []entity.Role{entity.RoleSupplier, entity.RoleDistributor, entity.RoleAdmin, entity.RoleViewer} {
		u := &entity.User{ID: "u1", Username: "u1", Role: role, Disabled: true}
		for _, op := range ops {
			assert.False(t, access.Can(u, op), "disabled role=%s op=%s", role, op)
		}
	}
}

func TestCan_UsuarioActivoSigueLaTabla(t *testing.T) {
	supplier := &entity.User{ID: "u1", Username: "s", Role: entity.RoleSupplier}
	assert.True(t, access.Can(supplier, access.OpRegisterProduct))
	assert.False(t, access.Can(supplier, access.OpAppendEvent))

	assert.False(t, access.Can(nil, access.OpReadProduct), "usuario nil denegado")
}
