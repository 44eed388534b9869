package entity

import "time"

// Clases de ítem de catálogo. Productos terminados y materias primas comparten
// estructura; solo cambia la clase y el documento que los consume.
const (
	ItemKindProduct  = "producto"
	ItemKindMaterial = "material"
)

// Item representa un producto terminado o una materia prima del catálogo.
// Stock solo se modifica vía movimientos (nunca por update directo del ítem);
// Category y Efficiency son columnas propias, jamás se parsean del nombre.
type Item struct {
	ID          string
	Kind        string // producto, material
	Category    string
	Efficiency  string
	Name        string
	Stock       int64 // unidades enteras, >= 0
	SafetyStock int64 // umbral de alerta de inventario bajo
	ImageURL    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el ítem está en o por debajo de su stock de seguridad.
func (i *Item) LowStock() bool {
	return i.Stock <= i.SafetyStock
}
