// Package access implementa la política de autorización: una tabla fija
// (rol, operación) -> permitido. Es pura: sin I/O, sin estado compartido,
// evaluable antes de tocar la base de datos.
package access

import "github.com/jhoicas/Trazabilidad-api/internal/domain/entity"

// Operation operación protegida de la API.
type Operation string

// Operaciones conocidas por la política.
const (
	OpRegisterProduct Operation = "product:register"
	OpUpdateProduct   Operation = "product:update"
	OpReadProduct     Operation = "product:read"
	OpAppendEvent     Operation = "event:append"
	OpReadHistory     Operation = "history:read"
)

// policyTable tabla fija de permisos por rol. admin no aparece: el superset
// rule en Allowed le concede cualquier operación.
var policyTable = map[entity.Role]map[Operation]struct{}{
	entity.RoleSupplier: {
		OpRegisterProduct: {},
		OpUpdateProduct:   {},
		OpReadProduct:     {},
		OpReadHistory:     {},
	},
	entity.RoleDistributor: {
		OpAppendEvent: {},
		OpReadProduct: {},
		OpReadHistory: {},
	},
	entity.RoleViewer: {
		OpReadProduct: {},
		OpReadHistory: {},
	},
}

// Allowed indica si el rol puede ejecutar la operación según la tabla fija.
// admin satisface cualquier requisito de rol (superset rule).
func Allowed(role entity.Role, op Operation) bool {
	if role == entity.RoleAdmin {
		return true
	}
	ops, ok := policyTable[role]
	if !ok {
		return false
	}
	_, ok = ops[op]
	return ok
}

// Can evalúa la política para un usuario concreto. Un usuario deshabilitado
// es denegado en toda operación, antes de consultar la tabla de roles.
func Can(u *entity.User, op Operation) bool {
	if u == nil || u.Disabled {
		return false
	}
	return Allowed(u.Role, op)
}
