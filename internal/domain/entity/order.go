package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la orden de venta (cabecera). El estado es una proyección del
// multiconjunto de estados de sus líneas; ver docstatus.DeriveRequiredStatus.
const (
	OrderStatusPending    = "pendiente"
	OrderStatusProcessing = "en_proceso"
	OrderStatusAwaiting   = "por_despachar"
	OrderStatusDone       = "completada"
)

// Estados de una línea de orden. Avance estrictamente hacia adelante.
const (
	OrderItemStatusUnreceived = "no_recibido"
	OrderItemStatusReceived   = "recibido"
	OrderItemStatusCompleted  = "completado"
)

// Métodos de entrega. Logística y despacho de fábrica exigen los campos de envío.
const (
	DeliveryMethodPickup  = "retiro"
	DeliveryMethodCarrier = "logistica"
	DeliveryMethodFactory = "despacho_fabrica"
	DeliveryMethodPending = "por_confirmar"
)

// Order es la cabecera de una orden de venta a un distribuidor.
type Order struct {
	ID              string
	DistributorID   string
	DistributorName string
	CustomerPO      string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	TotalAmount     decimal.Decimal // suma de los totales de línea, calculada en servidor
	Status          string
	DeliveryMethod  string
	ShippingCompany string
	ShippingAddress string
	ContactPerson   string
	ContactPhone    string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RequiresShippingDetails indica si el método de entrega exige el bloque de envío.
func (o *Order) RequiresShippingDetails() bool {
	return o.DeliveryMethod == DeliveryMethodCarrier || o.DeliveryMethod == DeliveryMethodFactory
}

// OrderItem es una línea de la orden: referencia a un producto del catálogo,
// cantidad, precio y total calculado (quantity × price).
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
	Total       decimal.Decimal
	Status      string
}

// LineTotal calcula quantity × price.
func (it *OrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(it.Quantity).Mul(it.Price)
}
