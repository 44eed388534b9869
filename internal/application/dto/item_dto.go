package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Kind        string `json:"kind"` // producto, material
	Category    string `json:"category"`
	Efficiency  string `json:"efficiency"`
	Name        string `json:"name"`
	SafetyStock int64  `json:"safety_stock"`
	ImageURL    string `json:"image_url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Stock no es editable aquí:
// solo cambia vía movimientos.
type UpdateItemRequest struct {
	Category    *string `json:"category,omitempty"`
	Efficiency  *string `json:"efficiency,omitempty"`
	Name        *string `json:"name,omitempty"`
	SafetyStock *int64  `json:"safety_stock,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ItemResponse ítem de catálogo con su bandera de inventario bajo.
type ItemResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Efficiency  string    `json:"efficiency"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"` // categoría + eficiencia + nombre, solo presentación
	Stock       int64     `json:"stock"`
	SafetyStock int64     `json:"safety_stock"`
	LowStock    bool      `json:"low_stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse listado paginado de catálogo.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
