package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/filtros-erp/internal/application/catalog"
	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

type fakeItemRepo struct{ byID map[string]*entity.Item }

func newFakeItemRepo() *fakeItemRepo { return &fakeItemRepo{byID: map[string]*entity.Item{}} }

func (r *fakeItemRepo) Create(it *entity.Item) error { cp := *it; r.byID[it.ID] = &cp; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.byID {
		if filter.LowStock && !it.LowStock() {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeItemRepo) Update(it *entity.Item) error { cp := *it; r.byID[it.ID] = &cp; return nil }
func (r *fakeItemRepo) Delete(id string) error       { delete(r.byID, id); return nil }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }
func (r *fakeItemRepo) UpdateStock(id string, stock int64) error {
	if it, ok := r.byID[id]; ok {
		it.Stock = stock
	}
	return nil
}

func TestDisplayName_ComposicionSoloPresentacion(t *testing.T) {
	item := &entity.Item{Category: "HEPA", Efficiency: "H13", Name: "Filtro panel 600x600"}
	assert.Equal(t, "HEPA H13 Filtro panel 600x600", appcatalog.DisplayName(item))

	// Campos vacíos no dejan espacios dobles.
	item = &entity.Item{Name: "Prefiltro G4"}
	assert.Equal(t, "Prefiltro G4", appcatalog.DisplayName(item))
}

func TestCreate_StockInicialCero(t *testing.T) {
	uc := appcatalog.NewUseCase(newFakeItemRepo())
	resp, err := uc.Create(dto.CreateItemRequest{
		Kind: entity.ItemKindProduct, Category: "HEPA", Efficiency: "H14",
		Name: "Filtro terminal", SafetyStock: 5,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Stock, "las existencias entran por movimiento, no en el alta")
	assert.True(t, resp.LowStock, "0 <= safety_stock")
}

func TestCreate_ClaseDesconocidaRechazada(t *testing.T) {
	uc := appcatalog.NewUseCase(newFakeItemRepo())
	_, err := uc.Create(dto.CreateItemRequest{Kind: "servicio", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_NoTocaStockNiClase(t *testing.T) {
	repo := newFakeItemRepo()
	repo.byID["it-1"] = &entity.Item{
		ID: "it-1", Kind: entity.ItemKindMaterial, Name: "Papel plisado",
		Stock: 40, SafetyStock: 10,
	}
	uc := appcatalog.NewUseCase(repo)

	nuevoNombre := "Papel plisado F7"
	resp, err := uc.Update("it-1", dto.UpdateItemRequest{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, nuevoNombre, resp.Name)
	assert.EqualValues(t, 40, resp.Stock)
	assert.Equal(t, entity.ItemKindMaterial, resp.Kind)
}

func TestUpdate_Inexistente(t *testing.T) {
	uc := appcatalog.NewUseCase(newFakeItemRepo())
	nombre := "x"
	_, err := uc.Update("nope", dto.UpdateItemRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStockItems_SoloBajoUmbral(t *testing.T) {
	repo := newFakeItemRepo()
	repo.byID["ok"] = &entity.Item{ID: "ok", Kind: entity.ItemKindProduct, Name: "A", Stock: 20, SafetyStock: 5}
	repo.byID["bajo"] = &entity.Item{ID: "bajo", Kind: entity.ItemKindProduct, Name: "B", Stock: 3, SafetyStock: 5}
	uc := appcatalog.NewUseCase(repo)

	items, err := uc.LowStockItems(50)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "bajo", items[0].ID)
}
