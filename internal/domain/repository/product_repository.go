package repository

import (
	"time"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto dentro de la transacción
	// en curso (SELECT FOR UPDATE). Solo tiene sentido sobre un repo atado a tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// SetStatus actualiza solo el estado derivado y last_updated (usado por el ledger).
	SetStatus(productID, status string, lastUpdated time.Time) error
	List(limit, offset int) ([]*entity.Product, error)
}
