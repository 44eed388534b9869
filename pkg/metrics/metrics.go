// Package metrics expone los contadores Prometheus de la aplicación.
// Se sirven en /metrics vía promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Motivos de rechazo de operaciones de stock.
const (
	ReasonInvalidQuantity   = "cantidad_invalida"
	ReasonInsufficientStock = "stock_insuficiente"
)

var (
	movementsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filtros_erp",
		Name:      "stock_movements_applied_total",
		Help:      "Movimientos de stock aplicados, por tipo (in/out).",
	}, []string{"type"})

	stockRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filtros_erp",
		Name:      "stock_operations_rejected_total",
		Help:      "Operaciones de stock rechazadas en validación, por motivo.",
	}, []string{"reason"})
)

// StockMovementApplied incrementa el contador de movimientos aplicados.
func StockMovementApplied(movType string) {
	movementsApplied.WithLabelValues(movType).Inc()
}

// StockRejected incrementa el contador de rechazos de validación.
func StockRejected(reason string) {
	stockRejected.WithLabelValues(reason).Inc()
}
