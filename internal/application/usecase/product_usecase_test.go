package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria para las pruebas del registro.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, ex := range r.products {
		if ex.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SetStatus(productID, status string, lastUpdated time.Time) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStatus = status
	p.LastUpdated = lastUpdated
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.Product
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		cp := *r.products[ids[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func TestCreate_EstadoInicialRegistered(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{Name: "Cafetera", Description: "600W", SKU: "CAF-001"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Registered", out.CurrentStatus)
	assert.False(t, out.LastUpdated.IsZero())
}

// SKU duplicado: el segundo registro falla con conflicto y el primero queda intacto.
func TestCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	first, err := uc.Create(dto.CreateProductRequest{Name: "Cafetera", SKU: "CAF-001"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Otra cafetera", SKU: "CAF-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := uc.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cafetera", got.Name, "el primer producto no debe verse afectado")
}

// Lecturas idempotentes: dos gets sin escrituras intermedias devuelven valores iguales.
func TestGetByID_Idempotente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Cafetera", SKU: "CAF-001"})
	require.NoError(t, err)

	a, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	b, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "inexistente -> nil (404 en el handler)")
}

func TestGetBySKU(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(dto.CreateProductRequest{Name: "Cafetera", SKU: "CAF-001"})
	require.NoError(t, err)

	out, err := uc.GetBySKU("CAF-001")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ID, out.ID)
}

func TestUpdate_PatchParcial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(dto.CreateProductRequest{Name: "Cafetera", Description: "600W", SKU: "CAF-001"})
	require.NoError(t, err)

	newName := "Cafetera industrial"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Cafetera industrial", out.Name)
	assert.Equal(t, "600W", out.Description, "campos no enviados se conservan")
	assert.Equal(t, "CAF-001", out.SKU)
	assert.Equal(t, "Registered", out.CurrentStatus, "update no toca el estado derivado")
	assert.False(t, out.LastUpdated.Before(created.LastUpdated), "last_updated debe avanzar")
}

// Cambiar el SKU a uno ya usado por otro producto es un conflicto.
func TestUpdate_SKUConflicto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "SKU-A"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateProductRequest{Name: "B", SKU: "SKU-B"})
	require.NoError(t, err)

	taken := "SKU-A"
	_, err = uc.Update(b.ID, dto.UpdateProductRequest{SKU: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, _ := uc.GetByID(b.ID)
	assert.Equal(t, "SKU-B", got.SKU, "el SKU no debe cambiar tras el conflicto")
}

func TestUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	name := "X"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_PaginacionYOrdenEstable(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	for _, sku := range []string{"S1", "S2", "S3", "S4", "S5"} {
		_, err := uc.Create(dto.CreateProductRequest{Name: "P-" + sku, SKU: sku})
		require.NoError(t, err)
	}

	page1, err := uc.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 2)

	page2, err := uc.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 2)
	assert.NotEqual(t, page1.Items[0].ID, page2.Items[0].ID)

	// Valores fuera de rango se ajustan, no fallan.
	clamped, err := uc.List(-1, -5)
	require.NoError(t, err)
	assert.Len(t, clamped.Items, 5)
}
