package docstatus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/docstatus"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
)

func TestTransition_AvanceOrdenadoEsLegal(t *testing.T) {
	assert.NoError(t, docstatus.ValidateOrderItemTransition(
		entity.OrderItemStatusUnreceived, entity.OrderItemStatusReceived))
	assert.NoError(t, docstatus.ValidateOrderItemTransition(
		entity.OrderItemStatusReceived, entity.OrderItemStatusCompleted))
	// Repetir el estado actual es un no-op legal.
	assert.NoError(t, docstatus.ValidateOrderItemTransition(
		entity.OrderItemStatusReceived, entity.OrderItemStatusReceived))
}

func TestTransition_SaltoDirectoRechazado(t *testing.T) {
	err := docstatus.ValidateOrderItemTransition(
		entity.OrderItemStatusUnreceived, entity.OrderItemStatusCompleted)
	require.ErrorIs(t, err, domain.ErrSkippedTransition,
		"no_recibido → completado debe pasar por recibido")
}

func TestTransition_RetrocesoRechazado(t *testing.T) {
	casos := [][2]string{
		{entity.OrderItemStatusReceived, entity.OrderItemStatusUnreceived},
		{entity.OrderItemStatusCompleted, entity.OrderItemStatusReceived},
		{entity.OrderItemStatusCompleted, entity.OrderItemStatusUnreceived},
	}
	for _, c := range casos {
		err := docstatus.ValidateOrderItemTransition(c[0], c[1])
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s → %s", c[0], c[1])
	}
}

func TestTransition_EstadoDesconocidoRechazado(t *testing.T) {
	err := docstatus.ValidateOrderItemTransition("enviado", entity.OrderItemStatusReceived)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPurchaseItemStatus_VocabularioLibrePeroConocido(t *testing.T) {
	assert.NoError(t, docstatus.ValidatePurchaseItemStatus(entity.PurchaseItemStatusCompleted))
	// Las líneas de compra pueden retroceder sin restricción.
	assert.NoError(t, docstatus.ValidatePurchaseItemStatus(entity.PurchaseItemStatusPending))
	assert.ErrorIs(t, docstatus.ValidatePurchaseItemStatus("despachado"), domain.ErrInvalidInput)
}
