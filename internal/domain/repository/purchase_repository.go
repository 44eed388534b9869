package repository

import "github.com/jhoicas/filtros-erp/internal/domain/entity"

// PurchaseStats conteo de compras por estado para el tablero.
type PurchaseStats struct {
	Draft     int
	Sent      int
	Partial   int
	Completed int
}

// PurchaseRepository define el puerto de persistencia de órdenes de compra y sus líneas.
type PurchaseRepository interface {
	CreateHeader(purchase *entity.Purchase) error
	GetHeader(id string) (*entity.Purchase, error)
	UpdateHeader(purchase *entity.Purchase) error
	List(status string, search string, limit, offset int) ([]*entity.Purchase, error)
	Delete(id string) error

	CreateItem(item *entity.PurchaseItem) error
	UpdateItem(item *entity.PurchaseItem) error
	DeleteItem(id string) error
	ListItems(purchaseID string) ([]*entity.PurchaseItem, error)

	Stats() (*PurchaseStats, error)
}
