package entity

import "time"

// StatusRegistered es el estado inicial de todo producto recién registrado.
const StatusRegistered = "Registered"

// Product representa un producto físico rastreado en la cadena de suministro.
// CurrentStatus es un campo derivado: siempre refleja el último Event agregado
// (o "Registered" si aún no hay eventos). Solo el ledger de eventos lo muta.
type Product struct {
	ID            string
	Name          string
	Description   string
	SKU           string // código único global
	CurrentStatus string
	LastUpdated   time.Time // monotónicamente no decreciente
	CreatedAt     time.Time
}
