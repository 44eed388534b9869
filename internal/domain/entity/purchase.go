package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la orden de compra. A diferencia de las órdenes de venta, la
// cabecera no se deriva de las líneas ni las líneas exigen orden de avance.
const (
	PurchaseStatusDraft     = "borrador"
	PurchaseStatusSent      = "enviada"
	PurchaseStatusPartial   = "entrega_parcial"
	PurchaseStatusCompleted = "completada"
)

// Estados de línea de compra (vocabulario libre).
const (
	PurchaseItemStatusPending   = "pendiente"
	PurchaseItemStatusReceived  = "recibido"
	PurchaseItemStatusCompleted = "completado"
)

// Purchase es la cabecera de una orden de compra de materiales a un proveedor.
type Purchase struct {
	ID                   string
	SupplierID           string
	SupplierName         string
	Purchaser            string
	PurchaseDate         time.Time
	ExpectedDeliveryDate *time.Time
	TotalAmount          decimal.Decimal
	Status               string
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseItem es una línea de la orden de compra.
type PurchaseItem struct {
	ID           string
	PurchaseID   string
	MaterialID   string
	MaterialName string
	Quantity     int64
	Price        decimal.Decimal
	Total        decimal.Decimal
	Status       string
}

// LineTotal calcula quantity × price.
func (it *PurchaseItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(it.Quantity).Mul(it.Price)
}
