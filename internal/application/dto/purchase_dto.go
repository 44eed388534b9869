package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemInput línea de compra en create/update.
type PurchaseItemInput struct {
	ID         string          `json:"id,omitempty"`
	MaterialID string          `json:"material_id"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status,omitempty"` // vacío = pendiente
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	SupplierID           string              `json:"supplier_id"`
	Purchaser            string              `json:"purchaser"`
	PurchaseDate         time.Time           `json:"purchase_date"`
	ExpectedDeliveryDate *time.Time          `json:"expected_delivery_date,omitempty"`
	Status               string              `json:"status,omitempty"` // vacío = borrador
	Notes                string              `json:"notes,omitempty"`
	Items                []PurchaseItemInput `json:"items"`
}

// UpdatePurchaseRequest body para PUT /api/purchases/:id.
type UpdatePurchaseRequest = CreatePurchaseRequest

// UpdatePurchaseStatusRequest body para PATCH /api/purchases/:id/status.
type UpdatePurchaseStatusRequest struct {
	Status string `json:"status"`
}

// PurchaseItemResponse línea con total calculado.
type PurchaseItemResponse struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
}

// PurchaseResponse cabecera con sus líneas.
type PurchaseResponse struct {
	ID                   string                 `json:"id"`
	SupplierID           string                 `json:"supplier_id"`
	SupplierName         string                 `json:"supplier_name"`
	Purchaser            string                 `json:"purchaser"`
	PurchaseDate         time.Time              `json:"purchase_date"`
	ExpectedDeliveryDate *time.Time             `json:"expected_delivery_date,omitempty"`
	TotalAmount          decimal.Decimal        `json:"total_amount"`
	Status               string                 `json:"status"`
	Notes                string                 `json:"notes,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	Items                []PurchaseItemResponse `json:"items,omitempty"`
}

// PurchaseListResponse listado paginado.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	Page      PageResponse       `json:"page"`
}
