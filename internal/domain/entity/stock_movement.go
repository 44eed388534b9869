package entity

import "time"

// Tipos de movimiento de stock. Un ajuste no es un tipo propio: se sintetiza
// como entrada o salida según el signo de la diferencia, con nota prefijada.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// AdjustmentNotePrefix marca la nota de los movimientos sintetizados por un
// ajuste de stock a un nivel absoluto.
const AdjustmentNotePrefix = "[ajuste] "

// StockMovement es un hecho inmutable del libro de inventario: nunca se edita
// ni se borra. La suma con signo de los movimientos de un ítem, en orden de
// creación, reproduce su stock actual (el stock inicial es 0 por convención).
type StockMovement struct {
	ID        string
	ItemID    string
	Type      string // in, out
	Quantity  int64  // magnitud, siempre > 0
	UserID    string
	UserName  string // denormalizado al leer el historial (join con users)
	Note      string
	CreatedAt time.Time
}

// Signed devuelve la cantidad con signo según el tipo.
func (m *StockMovement) Signed() int64 {
	if m.Type == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}
