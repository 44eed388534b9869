package dto

import "time"

// Acciones de stock expuestas en la API. "ajuste" interpreta Quantity como el
// nivel absoluto objetivo, no como delta.
const (
	StockActionIn     = "in"
	StockActionOut    = "out"
	StockActionAdjust = "ajuste"
)

// StockActionRequest body para POST /api/items/:id/movements.
type StockActionRequest struct {
	Action   string `json:"action"` // in, out, ajuste
	Quantity int64  `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// MovementResponse un asiento del libro de movimientos.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse historial de un ítem, más reciente primero.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Page      PageResponse       `json:"page"`
}
