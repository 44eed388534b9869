package orders_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	apporders "github.com/jhoicas/filtros-erp/internal/application/orders"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	headers map[string]*entity.Order
	items   map[string]*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{headers: map[string]*entity.Order{}, items: map[string]*entity.OrderItem{}}
}

func (r *fakeOrderRepo) CreateHeader(o *entity.Order) error { cp := *o; r.headers[o.ID] = &cp; return nil }
func (r *fakeOrderRepo) GetHeader(id string) (*entity.Order, error) {
	o, ok := r.headers[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (r *fakeOrderRepo) UpdateHeader(o *entity.Order) error { cp := *o; r.headers[o.ID] = &cp; return nil }
func (r *fakeOrderRepo) List(string, string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) ListByDistributor(string) ([]*entity.Order, error)      { return nil, nil }
func (r *fakeOrderRepo) Delete(id string) error {
	for k, it := range r.items {
		if it.OrderID == id {
			delete(r.items, k)
		}
	}
	delete(r.headers, id)
	return nil
}
func (r *fakeOrderRepo) CreateItem(it *entity.OrderItem) error { cp := *it; r.items[it.ID] = &cp; return nil }
func (r *fakeOrderRepo) UpdateItem(it *entity.OrderItem) error { cp := *it; r.items[it.ID] = &cp; return nil }
func (r *fakeOrderRepo) DeleteItem(id string) error            { delete(r.items, id); return nil }
func (r *fakeOrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeOrderRepo) GetItem(id string) (*entity.OrderItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeOrderRepo) Stats() (*repository.OrderStats, error) { return &repository.OrderStats{}, nil }
func (r *fakeOrderRepo) TotalForRange(from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeDistributorRepo struct{ byID map[string]*entity.Distributor }

func (r *fakeDistributorRepo) Create(*entity.Distributor) error { return nil }
func (r *fakeDistributorRepo) GetByID(id string) (*entity.Distributor, error) {
	return r.byID[id], nil
}
func (r *fakeDistributorRepo) List(string, int, int) ([]*entity.Distributor, error) { return nil, nil }
func (r *fakeDistributorRepo) Update(*entity.Distributor) error                     { return nil }
func (r *fakeDistributorRepo) Delete(string) error                                  { return nil }

type fakeCatalogRepo struct{ byID map[string]*entity.Item }

func (r *fakeCatalogRepo) Create(*entity.Item) error { return nil }
func (r *fakeCatalogRepo) GetByID(id string) (*entity.Item, error) {
	return r.byID[id], nil
}
func (r *fakeCatalogRepo) List(repository.ItemFilter, int, int) ([]*entity.Item, error) {
	return nil, nil
}
func (r *fakeCatalogRepo) Update(*entity.Item) error                    { return nil }
func (r *fakeCatalogRepo) Delete(string) error                          { return nil }
func (r *fakeCatalogRepo) GetForUpdate(id string) (*entity.Item, error) { return r.byID[id], nil }
func (r *fakeCatalogRepo) UpdateStock(string, int64) error              { return nil }

func newOrderFixture() (*apporders.UseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	distRepo := &fakeDistributorRepo{byID: map[string]*entity.Distributor{
		"dist-1": {ID: "dist-1", Name: "Distribuciones Norte"},
	}}
	catalog := &fakeCatalogRepo{byID: map[string]*entity.Item{
		"prod-1": {ID: "prod-1", Kind: entity.ItemKindProduct, Name: "Filtro HEPA H13"},
		"prod-2": {ID: "prod-2", Kind: entity.ItemKindProduct, Name: "Filtro carbón activado"},
	}}
	return apporders.NewUseCase(orderRepo, distRepo, catalog), orderRepo
}

func createRequest(items ...dto.OrderItemInput) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		DistributorID:  "dist-1",
		OrderDate:      time.Now(),
		DeliveryMethod: entity.DeliveryMethodPickup,
		Items:          items,
	}
}

func linea(productID string, qty int64, price int64, status string) dto.OrderItemInput {
	return dto.OrderItemInput{ProductID: productID, Quantity: qty, Price: decimal.NewFromInt(price), Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_TotalesCalculadosEnServidor(t *testing.T) {
	uc, _ := newOrderFixture()
	resp, err := uc.Create(createRequest(
		linea("prod-1", 3, 100, ""),
		linea("prod-2", 2, 250, ""),
	))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status, "estado por defecto")
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Total.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(800)), "total = Σ qty×price")
	assert.Equal(t, entity.OrderItemStatusUnreceived, resp.Items[0].Status)
}

func TestCreate_EstadoConflictivoRechazado(t *testing.T) {
	uc, _ := newOrderFixture()
	req := createRequest(linea("prod-1", 1, 100, entity.OrderItemStatusUnreceived))
	req.Status = entity.OrderStatusAwaiting
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrStatusConflict,
		"no se puede marcar por_despachar con líneas sin recibir")
}

func TestCreate_LogisticaSinTelefonoRechazada(t *testing.T) {
	uc, _ := newOrderFixture()
	req := createRequest(linea("prod-1", 1, 100, ""))
	req.DeliveryMethod = entity.DeliveryMethodCarrier
	req.ShippingCompany = "Transportes Sur"
	req.ShippingAddress = "Av. Industrial 742"
	req.ContactPerson = "R. Díaz"
	// contact_phone vacío
	_, err := uc.Create(req)
	require.ErrorIs(t, err, domain.ErrMissingShippingDetails)
	assert.Contains(t, err.Error(), "contact_phone")
}

func TestCreate_ValidacionesPreviasNoPersistenNada(t *testing.T) {
	uc, repo := newOrderFixture()
	_, err := uc.Create(createRequest(linea("prod-1", 0, 100, "")))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = uc.Create(createRequest(linea("material-9", 1, 100, "")))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.headers)
	assert.Empty(t, repo.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados de línea y derivación de cabecera
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItemStatus_AvanceRecalculaCabecera(t *testing.T) {
	uc, _ := newOrderFixture()
	resp, err := uc.Create(createRequest(linea("prod-1", 1, 100, "")))
	require.NoError(t, err)
	orderID, itemID := resp.ID, resp.Items[0].ID

	// no_recibido → recibido: la cabecera pasa a en_proceso.
	resp, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, resp.Status)

	// recibido → completado: todas completadas, la cabecera pasa a por_despachar.
	resp, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAwaiting, resp.Status)
}

func TestUpdateItemStatus_SaltoYRetrocesoRechazados(t *testing.T) {
	uc, _ := newOrderFixture()
	resp, err := uc.Create(createRequest(linea("prod-1", 1, 100, "")))
	require.NoError(t, err)
	orderID, itemID := resp.ID, resp.Items[0].ID

	_, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrSkippedTransition)

	_, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusReceived)
	require.NoError(t, err)
	_, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusUnreceived)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_ContraDerivacion(t *testing.T) {
	uc, _ := newOrderFixture()
	resp, err := uc.Create(createRequest(linea("prod-1", 1, 100, "")))
	require.NoError(t, err)
	orderID, itemID := resp.ID, resp.Items[0].ID

	// Con la línea sin recibir solo se permite pendiente.
	_, err = uc.UpdateStatus(orderID, entity.OrderStatusDone)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)

	// Completar la línea habilita por_despachar y completada, y ya no pendiente.
	_, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusReceived)
	require.NoError(t, err)
	_, err = uc.UpdateItemStatus(orderID, itemID, entity.OrderItemStatusCompleted)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(orderID, entity.OrderStatusPending)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)
	_, err = uc.UpdateStatus(orderID, entity.OrderStatusProcessing)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)

	got, err := uc.UpdateStatus(orderID, entity.OrderStatusDone)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDone, got.Status)
}

func TestUpdateStatus_VocabularioDesconocido(t *testing.T) {
	uc, _ := newOrderFixture()
	resp, err := uc.Create(createRequest(linea("prod-1", 1, 100, "")))
	require.NoError(t, err)
	_, err = uc.UpdateStatus(resp.ID, "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update completo (cabecera + líneas)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_LineasNuevasYEliminadas(t *testing.T) {
	uc, repo := newOrderFixture()
	resp, err := uc.Create(createRequest(
		linea("prod-1", 1, 100, ""),
		linea("prod-2", 2, 50, ""),
	))
	require.NoError(t, err)

	// Conservar la primera línea, quitar la segunda, agregar una nueva.
	kept := resp.Items[0]
	req := createRequest(
		dto.OrderItemInput{ID: kept.ID, ProductID: kept.ProductID, Quantity: 4, Price: decimal.NewFromInt(100)},
		linea("prod-2", 1, 300, ""),
	)
	req.Status = resp.Status
	updated, err := uc.Update(resp.ID, req)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 2)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(700)))
	assert.Len(t, repo.items, 2, "la línea ausente se eliminó")
}

func TestUpdate_TransicionIlegalEnLineaExistente(t *testing.T) {
	uc, _ := newOrderFixture()
	resp, err := uc.Create(createRequest(linea("prod-1", 1, 100, "")))
	require.NoError(t, err)

	kept := resp.Items[0]
	req := createRequest(dto.OrderItemInput{
		ID: kept.ID, ProductID: kept.ProductID, Quantity: 1,
		Price: decimal.NewFromInt(100), Status: entity.OrderItemStatusCompleted,
	})
	_, err = uc.Update(resp.ID, req)
	assert.ErrorIs(t, err, domain.ErrSkippedTransition)
}

func TestDelete_OrdenInexistente(t *testing.T) {
	uc, _ := newOrderFixture()
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
