package inventory

import (
	"context"

	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de stock y el
// asiento del libro se confirmen o deshagan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
