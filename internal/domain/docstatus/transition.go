// Package docstatus implementa las reglas de estado de los documentos:
// transiciones de línea y derivación del estado de cabecera a partir del
// multiconjunto de estados de sus líneas. Todo es puro, sin persistencia.
package docstatus

import (
	"fmt"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
)

// orden de avance de una línea de orden de venta.
var orderItemRank = map[string]int{
	entity.OrderItemStatusUnreceived: 0,
	entity.OrderItemStatusReceived:   1,
	entity.OrderItemStatusCompleted:  2,
}

// ValidateOrderItemTransition valida el cambio de estado de una línea de orden.
// Solo se avanza hacia adelante y de a un paso: no_recibido → recibido → completado.
// Repetir el estado actual es un no-op legal.
func ValidateOrderItemTransition(current, next string) error {
	curRank, ok := orderItemRank[current]
	if !ok {
		return fmt.Errorf("%w: estado actual desconocido %q", domain.ErrInvalidTransition, current)
	}
	nextRank, ok := orderItemRank[next]
	if !ok {
		return fmt.Errorf("%w: estado destino desconocido %q", domain.ErrInvalidTransition, next)
	}
	switch {
	case nextRank == curRank:
		return nil
	case nextRank < curRank:
		return fmt.Errorf("%w: %s → %s retrocede", domain.ErrInvalidTransition, current, next)
	case nextRank-curRank > 1:
		return fmt.Errorf("%w: %s → %s salta el paso intermedio", domain.ErrSkippedTransition, current, next)
	}
	return nil
}

// ValidatePurchaseItemStatus valida una línea de compra. El flujo de compras no
// impone orden de avance; solo se exige un valor del vocabulario conocido.
func ValidatePurchaseItemStatus(status string) error {
	switch status {
	case entity.PurchaseItemStatusPending, entity.PurchaseItemStatusReceived, entity.PurchaseItemStatusCompleted:
		return nil
	}
	return fmt.Errorf("%w: estado de línea de compra desconocido %q", domain.ErrInvalidInput, status)
}
