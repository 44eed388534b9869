package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de orden en create/update. Total se calcula en servidor.
type OrderItemInput struct {
	ID        string          `json:"id,omitempty"` // vacío = línea nueva
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status,omitempty"` // vacío = no_recibido
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	DistributorID   string           `json:"distributor_id"`
	CustomerPO      string           `json:"customer_po,omitempty"`
	OrderDate       time.Time        `json:"order_date"`
	DeliveryDate    *time.Time       `json:"delivery_date,omitempty"`
	Status          string           `json:"status,omitempty"`
	DeliveryMethod  string           `json:"delivery_method,omitempty"`
	ShippingCompany string           `json:"shipping_company,omitempty"`
	ShippingAddress string           `json:"shipping_address,omitempty"`
	ContactPerson   string           `json:"contact_person,omitempty"`
	ContactPhone    string           `json:"contact_phone,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Items           []OrderItemInput `json:"items"`
}

// UpdateOrderRequest body para PUT /api/orders/:id. Misma forma que create;
// las líneas ausentes se eliminan, las nuevas se insertan.
type UpdateOrderRequest = CreateOrderRequest

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderItemStatusRequest body para PATCH /api/orders/:id/items/:itemID/status.
type UpdateOrderItemStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea con total calculado.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
}

// OrderResponse cabecera con sus líneas.
type OrderResponse struct {
	ID              string              `json:"id"`
	DistributorID   string              `json:"distributor_id"`
	DistributorName string              `json:"distributor_name"`
	CustomerPO      string              `json:"customer_po,omitempty"`
	OrderDate       time.Time           `json:"order_date"`
	DeliveryDate    *time.Time          `json:"delivery_date,omitempty"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	DeliveryMethod  string              `json:"delivery_method,omitempty"`
	ShippingCompany string              `json:"shipping_company,omitempty"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	ContactPerson   string              `json:"contact_person,omitempty"`
	ContactPhone    string              `json:"contact_phone,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// OrderListResponse listado paginado de cabeceras.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Page   PageResponse    `json:"page"`
}
