package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
	"github.com/jhoicas/filtros-erp/pkg/metrics"
)

// StockUseCase aplica movimientos de stock de forma transaccional: bloquea la
// fila del ítem (SELECT FOR UPDATE), escribe el nuevo stock y agrega el asiento
// del libro en la misma transacción, con Commit/Rollback en TxRunner.
type StockUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	movementRepo repository.StockMovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, movementRepo repository.StockMovementRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, itemRepo: itemRepo, movementRepo: movementRepo}
}

// ApplyStockAction aplica la acción pedida por el usuario. Para in/out la
// cantidad es un delta > 0; para ajuste es el nivel absoluto objetivo >= 0.
// Exige un usuario autenticado. La llamada es idempotente ante fallo: nada
// persiste si alguna mitad falla.
func (uc *StockUseCase) ApplyStockAction(ctx context.Context, itemID string, in dto.StockActionRequest, userID string) (*entity.StockMovement, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	switch in.Action {
	case dto.StockActionIn:
		return uc.RecordMovement(ctx, itemID, entity.MovementTypeIn, in.Quantity, userID, in.Note)
	case dto.StockActionOut:
		return uc.RecordMovement(ctx, itemID, entity.MovementTypeOut, in.Quantity, userID, in.Note)
	case dto.StockActionAdjust:
		return uc.AdjustStock(ctx, itemID, in.Quantity, userID, in.Note)
	}
	return nil, fmt.Errorf("%w: acción %q", domain.ErrInvalidInput, in.Action)
}

// RecordMovement registra una entrada o salida. Las validaciones corren antes
// de cualquier mutación; la verificación de stock suficiente corre sobre la
// fila bloqueada dentro de la transacción.
func (uc *StockUseCase) RecordMovement(ctx context.Context, itemID, movType string, quantity int64, userID, note string) (*entity.StockMovement, error) {
	if movType != entity.MovementTypeIn && movType != entity.MovementTypeOut {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, movType)
	}
	if quantity <= 0 {
		metrics.StockRejected(metrics.ReasonInvalidQuantity)
		return nil, domain.ErrInvalidQuantity
	}

	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movementRepo repository.StockMovementRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newStock := item.Stock + quantity
		if movType == entity.MovementTypeOut {
			if quantity > item.Stock {
				metrics.StockRejected(metrics.ReasonInsufficientStock)
				return domain.ErrInsufficientStock
			}
			newStock = item.Stock - quantity
		}
		mov, err = applyMovement(itemRepo, movementRepo, itemID, newStock, movType, quantity, userID, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.StockMovementApplied(movType)
	return mov, nil
}

// AdjustStock lleva el stock al nivel absoluto newStock. diff cero es un no-op
// sin asiento; cualquier otro diff se sintetiza como entrada o salida de
// magnitud |diff| con la nota prefijada como ajuste, por el mismo camino que
// un movimiento normal.
func (uc *StockUseCase) AdjustStock(ctx context.Context, itemID string, newStock int64, userID, note string) (*entity.StockMovement, error) {
	if newStock < 0 {
		metrics.StockRejected(metrics.ReasonInvalidQuantity)
		return nil, domain.ErrInvalidQuantity
	}

	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movementRepo repository.StockMovementRepository) error {
		// El diff se calcula sobre la fila bloqueada, no sobre un snapshot del
		// cliente: dos ajustes concurrentes no pueden pisarse el efecto.
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		diff := newStock - item.Stock
		if diff == 0 {
			return nil
		}
		movType := entity.MovementTypeIn
		quantity := diff
		if diff < 0 {
			movType = entity.MovementTypeOut
			quantity = -diff
		}
		mov, err = applyMovement(itemRepo, movementRepo, itemID, newStock, movType, quantity, userID, entity.AdjustmentNotePrefix+note)
		return err
	})
	if err != nil {
		return nil, err
	}
	if mov != nil {
		metrics.StockMovementApplied(mov.Type)
	}
	return mov, nil
}

// applyMovement escribe el nuevo stock y agrega el asiento. Cada mitad falla
// con su propio error envuelto para que el caller sepa cuál escritura fue.
func applyMovement(itemRepo repository.ItemRepository, movementRepo repository.StockMovementRepository,
	itemID string, newStock int64, movType string, quantity int64, userID, note string) (*entity.StockMovement, error) {

	if err := itemRepo.UpdateStock(itemID, newStock); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuantityUpdateFailed, err)
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Type:      movType,
		Quantity:  quantity,
		UserID:    userID,
		Note:      note,
		CreatedAt: time.Now(),
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerAppendFailed, err)
	}
	return mov, nil
}

// GetMovementHistory devuelve el historial del ítem, más reciente primero, con
// el nombre del usuario autor de cada asiento.
func (uc *StockUseCase) GetMovementHistory(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByItem(itemID, limit, offset)
}
