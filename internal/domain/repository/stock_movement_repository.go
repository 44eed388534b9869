package repository

import "github.com/jhoicas/filtros-erp/internal/domain/entity"

// StockMovementRepository define el puerto del libro de movimientos.
// El libro es append-only: no hay update ni delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByItem devuelve el historial del ítem, más reciente primero, con el
	// nombre del usuario autor resuelto.
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
}
