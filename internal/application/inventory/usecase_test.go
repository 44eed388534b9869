package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	appinv "github.com/jhoicas/filtros-erp/internal/application/inventory"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner emula el rollback real: toma snapshot del
// estado y lo restaura si el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	items     map[string]*entity.Item
	movements []*entity.StockMovement

	failStockUpdate bool
	failLedger      bool
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.Item) error { r.s.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }
func (r *fakeItemRepo) List(repository.ItemFilter, int, int) ([]*entity.Item, error) {
	return nil, nil
}
func (r *fakeItemRepo) Update(*entity.Item) error { return nil }
func (r *fakeItemRepo) Delete(string) error       { return nil }
func (r *fakeItemRepo) UpdateStock(id string, stock int64) error {
	if r.s.failStockUpdate {
		return errors.New("conexión perdida")
	}
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Stock = stock
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.s.failLedger {
		return errors.New("insert rechazado")
	}
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ItemID == itemID {
			out = append(out, r.s.movements[i])
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.StockMovementRepository) error) error {
	// Snapshot para emular rollback.
	snapItems := make(map[string]*entity.Item, len(t.s.items))
	for k, v := range t.s.items {
		cp := *v
		snapItems[k] = &cp
	}
	snapMovs := len(t.s.movements)

	err := fn(&fakeItemRepo{s: t.s}, &fakeMovementRepo{s: t.s})
	if err != nil {
		t.s.items = snapItems
		t.s.movements = t.s.movements[:snapMovs]
	}
	return err
}

func newFixture(stock, safety int64) (*appinv.StockUseCase, *fakeStore) {
	s := &fakeStore{items: map[string]*entity.Item{
		"filtro-1": {
			ID: "filtro-1", Kind: entity.ItemKindProduct, Name: "Filtro HEPA H13",
			Stock: stock, SafetyStock: safety, CreatedAt: time.Now(),
		},
	}}
	uc := appinv.NewStockUseCase(&fakeTxRunner{s: s}, &fakeItemRepo{s: s}, &fakeMovementRepo{s: s})
	return uc, s
}

const testUser = "user-1"

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_SumaConSignoReproduceElStock(t *testing.T) {
	uc, s := newFixture(0, 0)
	ctx := context.Background()

	secuencia := []struct {
		tipo string
		qty  int64
	}{
		{entity.MovementTypeIn, 10}, {entity.MovementTypeIn, 5},
		{entity.MovementTypeOut, 3}, {entity.MovementTypeIn, 2},
		{entity.MovementTypeOut, 6},
	}
	for _, mv := range secuencia {
		_, err := uc.RecordMovement(ctx, "filtro-1", mv.tipo, mv.qty, testUser, "")
		require.NoError(t, err)
	}

	// stock final = s0 + Σ(in) − Σ(out) = 0 + 17 − 9
	assert.Equal(t, int64(8), s.items["filtro-1"].Stock)

	// El libro reproduce el stock: suma con signo en orden de creación.
	var suma int64
	for _, m := range s.movements {
		suma += m.Signed()
	}
	assert.Equal(t, s.items["filtro-1"].Stock, suma)
	assert.Len(t, s.movements, len(secuencia))
}

func TestRecordMovement_CantidadNoPositivaRechazada(t *testing.T) {
	uc, s := newFixture(10, 0)
	for _, qty := range []int64{0, -4} {
		_, err := uc.RecordMovement(context.Background(), "filtro-1", entity.MovementTypeIn, qty, testUser, "")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Equal(t, int64(10), s.items["filtro-1"].Stock, "una validación fallida no muta nada")
	assert.Empty(t, s.movements)
}

func TestRecordMovement_SalidaMayorAlStockRechazada(t *testing.T) {
	uc, s := newFixture(5, 0)
	_, err := uc.RecordMovement(context.Background(), "filtro-1", entity.MovementTypeOut, 6, testUser, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), s.items["filtro-1"].Stock)
	assert.Empty(t, s.movements, "el libro queda intacto")
}

func TestRecordMovement_ItemInexistente(t *testing.T) {
	uc, _ := newFixture(5, 0)
	_, err := uc.RecordMovement(context.Background(), "no-existe", entity.MovementTypeIn, 1, testUser, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_FalloDeCadaMitadEsDistinguible(t *testing.T) {
	uc, s := newFixture(10, 0)
	ctx := context.Background()

	s.failStockUpdate = true
	_, err := uc.RecordMovement(ctx, "filtro-1", entity.MovementTypeIn, 1, testUser, "")
	require.ErrorIs(t, err, domain.ErrQuantityUpdateFailed)

	s.failStockUpdate = false
	s.failLedger = true
	_, err = uc.RecordMovement(ctx, "filtro-1", entity.MovementTypeIn, 1, testUser, "")
	require.ErrorIs(t, err, domain.ErrLedgerAppendFailed)

	// Bajo la transacción ninguna mitad persiste sola: el rollback deshizo el
	// stock escrito antes del asiento fallido.
	assert.Equal(t, int64(10), s.items["filtro-1"].Stock)
	assert.Empty(t, s.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_MismoNivelEsNoOp(t *testing.T) {
	uc, s := newFixture(7, 0)
	mov, err := uc.AdjustStock(context.Background(), "filtro-1", 7, testUser, "inventario físico")
	require.NoError(t, err)
	assert.Nil(t, mov, "sin diferencia no hay movimiento")
	assert.Empty(t, s.movements)
	assert.Equal(t, int64(7), s.items["filtro-1"].Stock)
}

func TestAdjustStock_SintetizaMovimientoSegunSigno(t *testing.T) {
	uc, s := newFixture(7, 0)
	ctx := context.Background()

	// Hacia arriba: in de magnitud |12−7| = 5.
	mov, err := uc.AdjustStock(ctx, "filtro-1", 12, testUser, "conteo")
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, int64(5), mov.Quantity)
	assert.Equal(t, entity.AdjustmentNotePrefix+"conteo", mov.Note)
	assert.Equal(t, int64(12), s.items["filtro-1"].Stock)

	// Hacia abajo: out de magnitud |3−12| = 9.
	mov, err = uc.AdjustStock(ctx, "filtro-1", 3, testUser, "merma")
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, int64(9), mov.Quantity)
	assert.Equal(t, int64(3), s.items["filtro-1"].Stock)

	assert.Len(t, s.movements, 2, "exactamente un asiento por ajuste efectivo")
}

func TestAdjustStock_NivelNegativoRechazado(t *testing.T) {
	uc, _ := newFixture(7, 0)
	_, err := uc.AdjustStock(context.Background(), "filtro-1", -1, testUser, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyStockAction: orquestación y escenario end-to-end del flujo completo.
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyStockAction_SinUsuarioRechazada(t *testing.T) {
	uc, _ := newFixture(10, 5)
	_, err := uc.ApplyStockAction(context.Background(), "filtro-1",
		dto.StockActionRequest{Action: dto.StockActionIn, Quantity: 1}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestApplyStockAction_AccionDesconocidaRechazada(t *testing.T) {
	uc, _ := newFixture(10, 5)
	_, err := uc.ApplyStockAction(context.Background(), "filtro-1",
		dto.StockActionRequest{Action: "transfer", Quantity: 1}, testUser)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyStockAction_EscenarioCompleto(t *testing.T) {
	// Ítem con stock 10, stock de seguridad 5.
	uc, s := newFixture(10, 5)
	ctx := context.Background()

	// out 3 → stock 7, todavía sin alerta.
	_, err := uc.ApplyStockAction(ctx, "filtro-1", dto.StockActionRequest{Action: dto.StockActionOut, Quantity: 3}, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.items["filtro-1"].Stock)
	assert.False(t, s.items["filtro-1"].LowStock())

	// out 5 → stock 2 ≤ 5: alerta de inventario bajo.
	_, err = uc.ApplyStockAction(ctx, "filtro-1", dto.StockActionRequest{Action: dto.StockActionOut, Quantity: 5}, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.items["filtro-1"].Stock)
	assert.True(t, s.items["filtro-1"].LowStock())

	// ajuste a 2 → no-op, el libro sigue con 2 asientos.
	mov, err := uc.ApplyStockAction(ctx, "filtro-1", dto.StockActionRequest{Action: dto.StockActionAdjust, Quantity: 2}, testUser)
	require.NoError(t, err)
	assert.Nil(t, mov)
	assert.Len(t, s.movements, 2)

	// ajuste a 0 → un out sintetizado de magnitud 2.
	mov, err = uc.ApplyStockAction(ctx, "filtro-1", dto.StockActionRequest{Action: dto.StockActionAdjust, Quantity: 0, Note: "cierre"}, testUser)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, int64(2), mov.Quantity)
	assert.Equal(t, int64(0), s.items["filtro-1"].Stock)
	assert.Len(t, s.movements, 3)
}

func TestGetMovementHistory_MasRecientePrimero(t *testing.T) {
	uc, _ := newFixture(0, 0)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, "filtro-1", entity.MovementTypeIn, 4, testUser, "primero")
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, "filtro-1", entity.MovementTypeIn, 6, testUser, "segundo")
	require.NoError(t, err)

	hist, err := uc.GetMovementHistory("filtro-1", 20, 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "segundo", hist[0].Note)
	assert.Equal(t, "primero", hist[1].Note)

	_, err = uc.GetMovementHistory("no-existe", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
