package counterparty

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// UseCase administra distribuidores (clientes mayoristas) y proveedores de
// materias primas. Ambos comparten la misma forma de contacto.
type UseCase struct {
	distributorRepo repository.DistributorRepository
	supplierRepo    repository.SupplierRepository
}

// NewUseCase construye el caso de uso de contrapartes.
func NewUseCase(d repository.DistributorRepository, s repository.SupplierRepository) *UseCase {
	return &UseCase{distributorRepo: d, supplierRepo: s}
}

func validateCounterparty(in dto.CounterpartyRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	return nil
}

// ── Distribuidores ────────────────────────────────────────────────────────────

// CreateDistributor registra un distribuidor nuevo.
func (uc *UseCase) CreateDistributor(in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := validateCounterparty(in); err != nil {
		return nil, err
	}
	d := &entity.Distributor{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     in.Phone,
		Fax:       in.Fax,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.distributorRepo.Create(d); err != nil {
		return nil, fmt.Errorf("crear distribuidor: %w", err)
	}
	out := distributorResponse(d)
	return &out, nil
}

// GetDistributor obtiene un distribuidor por ID.
func (uc *UseCase) GetDistributor(id string) (*dto.CounterpartyResponse, error) {
	d, err := uc.distributorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, id)
	}
	out := distributorResponse(d)
	return &out, nil
}

// ListDistributors lista distribuidores filtrando por nombre.
func (uc *UseCase) ListDistributors(search string, limit, offset int) (*dto.CounterpartyListResponse, error) {
	list, err := uc.distributorRepo.List(search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar distribuidores: %w", err)
	}
	out := &dto.CounterpartyListResponse{
		Items: make([]dto.CounterpartyResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, d := range list {
		out.Items = append(out.Items, distributorResponse(d))
	}
	return out, nil
}

// UpdateDistributor reemplaza los datos de contacto de un distribuidor.
func (uc *UseCase) UpdateDistributor(id string, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := validateCounterparty(in); err != nil {
		return nil, err
	}
	d, err := uc.distributorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, id)
	}
	d.Name = strings.TrimSpace(in.Name)
	d.Phone = in.Phone
	d.Fax = in.Fax
	d.TaxID = in.TaxID
	d.Address = in.Address
	d.Notes = in.Notes
	if err := uc.distributorRepo.Update(d); err != nil {
		return nil, fmt.Errorf("actualizar distribuidor: %w", err)
	}
	out := distributorResponse(d)
	return &out, nil
}

// DeleteDistributor elimina un distribuidor.
func (uc *UseCase) DeleteDistributor(id string) error {
	d, err := uc.distributorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, id)
	}
	return uc.distributorRepo.Delete(id)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplier registra un proveedor nuevo.
func (uc *UseCase) CreateSupplier(in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := validateCounterparty(in); err != nil {
		return nil, err
	}
	s := &entity.Supplier{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     in.Phone,
		Fax:       in.Fax,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	out := supplierResponse(s)
	return &out, nil
}

// GetSupplier obtiene un proveedor por ID.
func (uc *UseCase) GetSupplier(id string) (*dto.CounterpartyResponse, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	out := supplierResponse(s)
	return &out, nil
}

// ListSuppliers lista proveedores filtrando por nombre.
func (uc *UseCase) ListSuppliers(search string, limit, offset int) (*dto.CounterpartyListResponse, error) {
	list, err := uc.supplierRepo.List(search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	out := &dto.CounterpartyListResponse{
		Items: make([]dto.CounterpartyResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range list {
		out.Items = append(out.Items, supplierResponse(s))
	}
	return out, nil
}

// UpdateSupplier reemplaza los datos de contacto de un proveedor.
func (uc *UseCase) UpdateSupplier(id string, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := validateCounterparty(in); err != nil {
		return nil, err
	}
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	s.Name = strings.TrimSpace(in.Name)
	s.Phone = in.Phone
	s.Fax = in.Fax
	s.TaxID = in.TaxID
	s.Address = in.Address
	s.Notes = in.Notes
	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, fmt.Errorf("actualizar proveedor: %w", err)
	}
	out := supplierResponse(s)
	return &out, nil
}

// DeleteSupplier elimina un proveedor.
func (uc *UseCase) DeleteSupplier(id string) error {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return uc.supplierRepo.Delete(id)
}

func distributorResponse(d *entity.Distributor) dto.CounterpartyResponse {
	return dto.CounterpartyResponse{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Fax:       d.Fax,
		TaxID:     d.TaxID,
		Address:   d.Address,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}

func supplierResponse(s *entity.Supplier) dto.CounterpartyResponse {
	return dto.CounterpartyResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Fax:       s.Fax,
		TaxID:     s.TaxID,
		Address:   s.Address,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}
