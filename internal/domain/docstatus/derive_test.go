package docstatus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/docstatus"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// DeriveOrderRequirement: precedencia estricta:
// no_recibido presente > recibido presente > todas completadas.
// ──────────────────────────────────────────────────────────────────────────────

func TestDerive_SinLineas_SinRestriccion(t *testing.T) {
	req := docstatus.DeriveOrderRequirement(nil)
	assert.False(t, req.Constrained(), "una orden sin líneas no restringe la cabecera")
	assert.True(t, req.Permits(entity.OrderStatusDone))
}

func TestDerive_LineaNoRecibida_ExigePendiente(t *testing.T) {
	// La línea menos avanzada manda, sin importar el orden de la lista.
	casos := [][]string{
		{entity.OrderItemStatusUnreceived, entity.OrderItemStatusCompleted},
		{entity.OrderItemStatusCompleted, entity.OrderItemStatusUnreceived},
		{entity.OrderItemStatusReceived, entity.OrderItemStatusUnreceived, entity.OrderItemStatusCompleted},
		{entity.OrderItemStatusUnreceived},
	}
	for _, lineas := range casos {
		req := docstatus.DeriveOrderRequirement(lineas)
		require.True(t, req.Constrained())
		assert.Equal(t, []string{entity.OrderStatusPending}, req.Allowed, "líneas: %v", lineas)
		assert.False(t, req.Permits(entity.OrderStatusProcessing))
		assert.False(t, req.Permits(entity.OrderStatusAwaiting))
	}
}

func TestDerive_LineaRecibidaSinNoRecibidas_ExigeEnProceso(t *testing.T) {
	req := docstatus.DeriveOrderRequirement([]string{
		entity.OrderItemStatusReceived, entity.OrderItemStatusCompleted,
	})
	assert.Equal(t, []string{entity.OrderStatusProcessing}, req.Allowed)
}

func TestDerive_TodasCompletadas_PermiteDespachoOCompletada(t *testing.T) {
	req := docstatus.DeriveOrderRequirement([]string{
		entity.OrderItemStatusCompleted, entity.OrderItemStatusCompleted,
	})
	assert.True(t, req.Permits(entity.OrderStatusAwaiting))
	assert.True(t, req.Permits(entity.OrderStatusDone))
	assert.False(t, req.Permits(entity.OrderStatusPending))
	assert.False(t, req.Permits(entity.OrderStatusProcessing))
}

func TestValidateOrderStatus_ConflictoNombraLaRegla(t *testing.T) {
	err := docstatus.ValidateOrderStatus(entity.OrderStatusPending, []string{
		entity.OrderItemStatusCompleted,
	})
	require.ErrorIs(t, err, domain.ErrStatusConflict)
	assert.Contains(t, err.Error(), "todas las líneas completadas")

	// No se puede marcar despachada/completada con líneas incompletas.
	err = docstatus.ValidateOrderStatus(entity.OrderStatusAwaiting, []string{
		entity.OrderItemStatusReceived,
	})
	require.ErrorIs(t, err, domain.ErrStatusConflict)
}

func TestRecomputeOrderStatus_ForzadoYConservacion(t *testing.T) {
	// Cabecera violatoria → se fuerza al primer estado permitido.
	got := docstatus.RecomputeOrderStatus(entity.OrderStatusPending, []string{
		entity.OrderItemStatusCompleted,
	})
	assert.Equal(t, entity.OrderStatusAwaiting, got)

	// Cabecera ya válida → se conserva (completada no se degrada a por_despachar).
	got = docstatus.RecomputeOrderStatus(entity.OrderStatusDone, []string{
		entity.OrderItemStatusCompleted,
	})
	assert.Equal(t, entity.OrderStatusDone, got)

	got = docstatus.RecomputeOrderStatus(entity.OrderStatusDone, []string{
		entity.OrderItemStatusUnreceived,
	})
	assert.Equal(t, entity.OrderStatusPending, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateShippingDetails: campos obligatorios según método de entrega.
// ──────────────────────────────────────────────────────────────────────────────

func ordenConEnvio(metodo string) *entity.Order {
	return &entity.Order{
		ID:              "ord-1",
		DistributorID:   "dist-1",
		OrderDate:       time.Now(),
		Status:          entity.OrderStatusPending,
		DeliveryMethod:  metodo,
		ShippingCompany: "Transportes Sur",
		ShippingAddress: "Av. Industrial 742",
		ContactPerson:   "R. Díaz",
		ContactPhone:    "555-0101",
	}
}

func TestShipping_RetiroNoExigeCampos(t *testing.T) {
	o := ordenConEnvio(entity.DeliveryMethodPickup)
	o.ShippingCompany, o.ShippingAddress, o.ContactPerson, o.ContactPhone = "", "", "", ""
	assert.NoError(t, docstatus.ValidateShippingDetails(o))
}

func TestShipping_LogisticaReportaPrimerCampoFaltante(t *testing.T) {
	o := ordenConEnvio(entity.DeliveryMethodCarrier)
	o.ContactPhone = ""
	err := docstatus.ValidateShippingDetails(o)
	require.ErrorIs(t, err, domain.ErrMissingShippingDetails)
	assert.Contains(t, err.Error(), "contact_phone")

	// Con varios campos vacíos se nombra el primero en orden de formulario.
	o.ShippingCompany = ""
	err = docstatus.ValidateShippingDetails(o)
	require.ErrorIs(t, err, domain.ErrMissingShippingDetails)
	assert.Contains(t, err.Error(), "shipping_company")
}

func TestShipping_DespachoFabricaCompletoPasa(t *testing.T) {
	assert.NoError(t, docstatus.ValidateShippingDetails(ordenConEnvio(entity.DeliveryMethodFactory)))
}
