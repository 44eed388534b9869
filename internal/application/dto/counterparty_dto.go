package dto

import "time"

// CounterpartyRequest body para crear/actualizar distribuidores y proveedores
// (misma forma para ambos).
type CounterpartyRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Fax     string `json:"fax,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// CounterpartyResponse distribuidor o proveedor.
type CounterpartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Fax       string    `json:"fax,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CounterpartyListResponse listado paginado.
type CounterpartyListResponse struct {
	Items []CounterpartyResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
