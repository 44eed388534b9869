package repository

import "github.com/jhoicas/filtros-erp/internal/domain/entity"

// ItemFilter filtros de listado de catálogo.
type ItemFilter struct {
	Kind       string // producto, material; vacío = ambos
	Category   string
	Efficiency string
	Search     string // sobre nombre y notas
	LowStock   bool   // solo ítems con stock <= safety_stock
}

// ItemRepository define el puerto de persistencia del catálogo (productos y
// materiales). Stock nunca se escribe por Update: solo vía UpdateStock dentro
// de la transacción que registra el movimiento.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List(filter ItemFilter, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error

	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para aplicar
	// el read-compute-write de stock sin carreras entre sesiones.
	GetForUpdate(id string) (*entity.Item, error)
	UpdateStock(id string, stock int64) error
}
