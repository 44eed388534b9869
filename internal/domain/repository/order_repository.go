package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/filtros-erp/internal/domain/entity"
)

// OrderStats conteo de órdenes por estado para el tablero.
type OrderStats struct {
	Pending    int
	Processing int
	Awaiting   int
	Done       int
}

// OrderRepository define el puerto de persistencia de órdenes de venta y sus líneas.
type OrderRepository interface {
	CreateHeader(order *entity.Order) error
	GetHeader(id string) (*entity.Order, error)
	UpdateHeader(order *entity.Order) error
	List(status string, search string, limit, offset int) ([]*entity.Order, error)
	ListByDistributor(distributorID string) ([]*entity.Order, error)
	Delete(id string) error // borra líneas y luego cabecera

	CreateItem(item *entity.OrderItem) error
	UpdateItem(item *entity.OrderItem) error
	DeleteItem(id string) error
	ListItems(orderID string) ([]*entity.OrderItem, error)
	GetItem(id string) (*entity.OrderItem, error)

	Stats() (*OrderStats, error)
	// TotalForRange suma el total de las órdenes con order_date en [from, to).
	TotalForRange(from, to time.Time) (decimal.Decimal, error)
}
