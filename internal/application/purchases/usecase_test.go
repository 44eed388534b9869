package purchases_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	apppurchases "github.com/jhoicas/filtros-erp/internal/application/purchases"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

type fakePurchaseRepo struct {
	headers map[string]*entity.Purchase
	items   map[string]*entity.PurchaseItem
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{headers: map[string]*entity.Purchase{}, items: map[string]*entity.PurchaseItem{}}
}

func (r *fakePurchaseRepo) CreateHeader(p *entity.Purchase) error {
	cp := *p
	r.headers[p.ID] = &cp
	return nil
}
func (r *fakePurchaseRepo) GetHeader(id string) (*entity.Purchase, error) {
	p, ok := r.headers[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakePurchaseRepo) UpdateHeader(p *entity.Purchase) error {
	cp := *p
	r.headers[p.ID] = &cp
	return nil
}
func (r *fakePurchaseRepo) List(string, string, int, int) ([]*entity.Purchase, error) {
	return nil, nil
}
func (r *fakePurchaseRepo) Delete(id string) error {
	for k, it := range r.items {
		if it.PurchaseID == id {
			delete(r.items, k)
		}
	}
	delete(r.headers, id)
	return nil
}
func (r *fakePurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}
func (r *fakePurchaseRepo) UpdateItem(it *entity.PurchaseItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}
func (r *fakePurchaseRepo) DeleteItem(id string) error { delete(r.items, id); return nil }
func (r *fakePurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range r.items {
		if it.PurchaseID == purchaseID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakePurchaseRepo) Stats() (*repository.PurchaseStats, error) {
	return &repository.PurchaseStats{}, nil
}

type fakeSupplierRepo struct{ byID map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *fakeSupplierRepo) List(string, int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error                     { return nil }
func (r *fakeSupplierRepo) Delete(string) error                               { return nil }

type fakeMaterialRepo struct{ byID map[string]*entity.Item }

func (r *fakeMaterialRepo) Create(*entity.Item) error { return nil }
func (r *fakeMaterialRepo) GetByID(id string) (*entity.Item, error) {
	return r.byID[id], nil
}
func (r *fakeMaterialRepo) List(repository.ItemFilter, int, int) ([]*entity.Item, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) Update(*entity.Item) error                    { return nil }
func (r *fakeMaterialRepo) Delete(string) error                          { return nil }
func (r *fakeMaterialRepo) GetForUpdate(id string) (*entity.Item, error) { return r.byID[id], nil }
func (r *fakeMaterialRepo) UpdateStock(string, int64) error              { return nil }

func newPurchaseFixture() *apppurchases.UseCase {
	purchaseRepo := newFakePurchaseRepo()
	supplierRepo := &fakeSupplierRepo{byID: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Insumos del Pacífico"},
	}}
	materials := &fakeMaterialRepo{byID: map[string]*entity.Item{
		"mat-1":  {ID: "mat-1", Kind: entity.ItemKindMaterial, Name: "Papel plisado"},
		"prod-1": {ID: "prod-1", Kind: entity.ItemKindProduct, Name: "Filtro HEPA H13"},
	}}
	return apppurchases.NewUseCase(purchaseRepo, supplierRepo, materials)
}

func compraRequest(items ...dto.PurchaseItemInput) dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		SupplierID:   "sup-1",
		Purchaser:    "M. Herrera",
		PurchaseDate: time.Now(),
		Items:        items,
	}
}

func TestCreate_BorradorPorDefectoYTotales(t *testing.T) {
	uc := newPurchaseFixture()
	resp, err := uc.Create(compraRequest(
		dto.PurchaseItemInput{MaterialID: "mat-1", Quantity: 10, Price: decimal.NewFromInt(35)},
	))
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusDraft, resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, entity.PurchaseItemStatusPending, resp.Items[0].Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(350)))
}

func TestCreate_ProductoNoEsMaterial(t *testing.T) {
	uc := newPurchaseFixture()
	_, err := uc.Create(compraRequest(
		dto.PurchaseItemInput{MaterialID: "prod-1", Quantity: 1, Price: decimal.NewFromInt(10)},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"solo los materiales se compran; los productos se venden")
}

func TestUpdateStatus_CabeceraLibreSinDerivacion(t *testing.T) {
	uc := newPurchaseFixture()
	resp, err := uc.Create(compraRequest(
		dto.PurchaseItemInput{MaterialID: "mat-1", Quantity: 1, Price: decimal.NewFromInt(10)},
	))
	require.NoError(t, err)

	// Con la línea aún pendiente la cabecera puede marcarse completada:
	// las compras no derivan el estado de cabecera desde las líneas.
	got, err := uc.UpdateStatus(resp.ID, entity.PurchaseStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusCompleted, got.Status)

	// Y puede volver atrás sin restricción de orden.
	got, err = uc.UpdateStatus(resp.ID, entity.PurchaseStatusSent)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusSent, got.Status)
}

func TestUpdateStatus_VocabularioDesconocido(t *testing.T) {
	uc := newPurchaseFixture()
	resp, err := uc.Create(compraRequest(
		dto.PurchaseItemInput{MaterialID: "mat-1", Quantity: 1, Price: decimal.NewFromInt(10)},
	))
	require.NoError(t, err)
	_, err = uc.UpdateStatus(resp.ID, "cancelada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_LineaRetrocedeSinError(t *testing.T) {
	uc := newPurchaseFixture()
	resp, err := uc.Create(compraRequest(
		dto.PurchaseItemInput{MaterialID: "mat-1", Quantity: 2, Price: decimal.NewFromInt(10), Status: entity.PurchaseItemStatusCompleted},
	))
	require.NoError(t, err)

	req := compraRequest(dto.PurchaseItemInput{
		ID: resp.Items[0].ID, MaterialID: "mat-1", Quantity: 2,
		Price: decimal.NewFromInt(10), Status: entity.PurchaseItemStatusPending,
	})
	updated, err := uc.Update(resp.ID, req)
	require.NoError(t, err, "las líneas de compra no exigen orden de avance")
	assert.Equal(t, entity.PurchaseItemStatusPending, updated.Items[0].Status)
}
