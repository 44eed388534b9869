package docstatus

import (
	"fmt"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
)

// Requirement es la restricción que las líneas imponen al estado de la cabecera.
// Allowed vacío significa sin restricción (orden sin líneas).
type Requirement struct {
	Allowed []string
	Rule    string
}

// Constrained indica si existe restricción sobre la cabecera.
func (r Requirement) Constrained() bool { return len(r.Allowed) > 0 }

// Permits indica si el estado de cabecera dado cumple la restricción.
func (r Requirement) Permits(status string) bool {
	if !r.Constrained() {
		return true
	}
	for _, s := range r.Allowed {
		if s == status {
			return true
		}
	}
	return false
}

// DeriveOrderRequirement deriva la restricción de cabecera desde los estados de
// línea. Precedencia estricta: alguna no recibida > alguna recibida > todas
// completadas. La línea menos avanzada limita el progreso visible del documento;
// solo con todas las líneas completadas la cabecera puede pasar a despacho.
func DeriveOrderRequirement(lineStatuses []string) Requirement {
	if len(lineStatuses) == 0 {
		return Requirement{}
	}
	anyUnreceived := false
	anyReceived := false
	for _, s := range lineStatuses {
		switch s {
		case entity.OrderItemStatusUnreceived:
			anyUnreceived = true
		case entity.OrderItemStatusReceived:
			anyReceived = true
		}
	}
	switch {
	case anyUnreceived:
		return Requirement{
			Allowed: []string{entity.OrderStatusPending},
			Rule:    "con líneas no recibidas la orden debe estar pendiente",
		}
	case anyReceived:
		return Requirement{
			Allowed: []string{entity.OrderStatusProcessing},
			Rule:    "con líneas recibidas la orden debe estar en proceso",
		}
	default:
		return Requirement{
			Allowed: []string{entity.OrderStatusAwaiting, entity.OrderStatusDone},
			Rule:    "con todas las líneas completadas la orden debe estar por despachar o completada",
		}
	}
}

// ValidateOrderStatus rechaza con ErrStatusConflict un estado de cabecera que
// contradiga la derivación, nombrando la regla ofendida.
func ValidateOrderStatus(header string, lineStatuses []string) error {
	req := DeriveOrderRequirement(lineStatuses)
	if req.Permits(header) {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrStatusConflict, req.Rule)
}

// RecomputeOrderStatus devuelve el estado de cabecera tras un cambio de líneas:
// si el actual sigue siendo válido se conserva; si no, se fuerza al primer
// estado permitido por la derivación (por_despachar antes que completada).
func RecomputeOrderStatus(current string, lineStatuses []string) string {
	req := DeriveOrderRequirement(lineStatuses)
	if req.Permits(current) {
		return current
	}
	return req.Allowed[0]
}

// ValidateShippingDetails aplica la regla cruzada de envío: logística y
// despacho de fábrica exigen transportista, dirección y contacto. Reporta el
// primer campo faltante.
func ValidateShippingDetails(o *entity.Order) error {
	if !o.RequiresShippingDetails() {
		return nil
	}
	missing := ""
	switch {
	case o.ShippingCompany == "":
		missing = "shipping_company"
	case o.ShippingAddress == "":
		missing = "shipping_address"
	case o.ContactPerson == "":
		missing = "contact_person"
	case o.ContactPhone == "":
		missing = "contact_phone"
	default:
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrMissingShippingDetails, missing)
}
