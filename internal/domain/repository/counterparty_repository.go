package repository

import "github.com/jhoicas/filtros-erp/internal/domain/entity"

// DistributorRepository persistencia de distribuidores.
type DistributorRepository interface {
	Create(d *entity.Distributor) error
	GetByID(id string) (*entity.Distributor, error)
	List(search string, limit, offset int) ([]*entity.Distributor, error)
	Update(d *entity.Distributor) error
	Delete(id string) error
}

// SupplierRepository persistencia de proveedores de materiales.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
}
