package entity

import "time"

// Role es el rol de un usuario. Tipo cerrado: solo los valores declarados abajo son válidos.
type Role string

// Roles válidos para User.
const (
	RoleSupplier    Role = "supplier"    // registra y actualiza productos
	RoleDistributor Role = "distributor" // registra eventos de custodia
	RoleAdmin       Role = "admin"       // puede todo
	RoleViewer      Role = "viewer"      // solo lectura
)

// Valid indica si el rol es uno de los valores cerrados.
func (r Role) Valid() bool {
	switch r {
	case RoleSupplier, RoleDistributor, RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Disabled     bool // un usuario deshabilitado no puede ejecutar ninguna operación
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
