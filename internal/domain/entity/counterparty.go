package entity

import "time"

// Distributor es el cliente mayorista al que se venden productos terminados.
type Distributor struct {
	ID        string
	Name      string
	Phone     string
	Fax       string
	TaxID     string
	Address   string
	Notes     string
	CreatedAt time.Time
}

// Supplier es el proveedor al que se compran materias primas.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Fax       string
	TaxID     string
	Address   string
	Notes     string
	CreatedAt time.Time
}
