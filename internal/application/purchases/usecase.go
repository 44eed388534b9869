package purchases

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/docstatus"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// UseCase casos de uso de órdenes de compra. El estado de cabecera es libre
// (lo fija compras según el avance del proveedor); solo se valida vocabulario.
type UseCase struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(purchaseRepo repository.PurchaseRepository, supplierRepo repository.SupplierRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo, itemRepo: itemRepo}
}

func validatePurchaseStatus(status string) error {
	switch status {
	case entity.PurchaseStatusDraft, entity.PurchaseStatusSent,
		entity.PurchaseStatusPartial, entity.PurchaseStatusCompleted:
		return nil
	}
	return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
}

// Create valida y persiste una compra con sus líneas. Los totales se calculan
// en servidor igual que en órdenes de venta.
func (uc *UseCase) Create(in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, in.SupplierID)
	}

	header := &entity.Purchase{
		ID:                   uuid.New().String(),
		SupplierID:           supplier.ID,
		SupplierName:         supplier.Name,
		Purchaser:            in.Purchaser,
		PurchaseDate:         in.PurchaseDate,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               in.Status,
		Notes:                in.Notes,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	if header.Status == "" {
		header.Status = entity.PurchaseStatusDraft
	}
	if err := validatePurchaseStatus(header.Status); err != nil {
		return nil, err
	}

	items, err := uc.buildItems(header.ID, in.Items)
	if err != nil {
		return nil, err
	}
	header.TotalAmount = sumTotals(items)

	if err := uc.purchaseRepo.CreateHeader(header); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := uc.purchaseRepo.CreateItem(it); err != nil {
			return nil, err
		}
	}
	return toPurchaseResponse(header, items), nil
}

// buildItems arma las líneas validando material, cantidad y vocabulario de
// estado. Las compras no exigen orden de avance entre estados de línea.
func (uc *UseCase) buildItems(purchaseID string, inputs []dto.PurchaseItemInput) ([]*entity.PurchaseItem, error) {
	items := make([]*entity.PurchaseItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		material, err := uc.itemRepo.GetByID(in.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil || material.Kind != entity.ItemKindMaterial {
			return nil, fmt.Errorf("%w: material %s", domain.ErrNotFound, in.MaterialID)
		}

		status := in.Status
		if status == "" {
			status = entity.PurchaseItemStatusPending
		}
		if err := docstatus.ValidatePurchaseItemStatus(status); err != nil {
			return nil, err
		}
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}

		item := &entity.PurchaseItem{
			ID:           id,
			PurchaseID:   purchaseID,
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Quantity:     in.Quantity,
			Price:        in.Price,
			Status:       status,
		}
		item.Total = item.LineTotal()
		items = append(items, item)
	}
	return items, nil
}

// Update reescribe cabecera y líneas con la misma semántica que en órdenes:
// líneas con ID se actualizan, nuevas se insertan, ausentes se eliminan.
func (uc *UseCase) Update(id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	header, err := uc.purchaseRepo.GetHeader(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	prevItems, err := uc.purchaseRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(prevItems))
	for _, it := range prevItems {
		existing[it.ID] = true
	}

	items, err := uc.buildItems(id, in.Items)
	if err != nil {
		return nil, err
	}

	if in.SupplierID != "" && in.SupplierID != header.SupplierID {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, in.SupplierID)
		}
		header.SupplierID = supplier.ID
		header.SupplierName = supplier.Name
	}
	header.Purchaser = in.Purchaser
	header.PurchaseDate = in.PurchaseDate
	header.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	header.Notes = in.Notes
	if in.Status != "" {
		if err := validatePurchaseStatus(in.Status); err != nil {
			return nil, err
		}
		header.Status = in.Status
	}
	header.TotalAmount = sumTotals(items)
	header.UpdatedAt = time.Now()

	if err := uc.purchaseRepo.UpdateHeader(header); err != nil {
		return nil, err
	}
	kept := make(map[string]bool, len(items))
	for _, it := range items {
		kept[it.ID] = true
		if existing[it.ID] {
			err = uc.purchaseRepo.UpdateItem(it)
		} else {
			err = uc.purchaseRepo.CreateItem(it)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, prev := range prevItems {
		if !kept[prev.ID] {
			if err := uc.purchaseRepo.DeleteItem(prev.ID); err != nil {
				return nil, err
			}
		}
	}
	return toPurchaseResponse(header, items), nil
}

// UpdateStatus cambia solo el estado de cabecera.
func (uc *UseCase) UpdateStatus(id, status string) (*dto.PurchaseResponse, error) {
	if err := validatePurchaseStatus(status); err != nil {
		return nil, err
	}
	header, err := uc.purchaseRepo.GetHeader(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	header.Status = status
	header.UpdatedAt = time.Now()
	if err := uc.purchaseRepo.UpdateHeader(header); err != nil {
		return nil, err
	}
	items, err := uc.purchaseRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(header, items), nil
}

// GetWithItems devuelve cabecera + líneas.
func (uc *UseCase) GetWithItems(id string) (*dto.PurchaseResponse, error) {
	header, err := uc.purchaseRepo.GetHeader(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(header, items), nil
}

// List lista cabeceras filtrando por estado y búsqueda libre.
func (uc *UseCase) List(status, search string, limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List(status, search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPurchaseResponse(p, nil))
	}
	return &dto.PurchaseListResponse{Purchases: out, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete elimina la compra y sus líneas.
func (uc *UseCase) Delete(id string) error {
	header, err := uc.purchaseRepo.GetHeader(id)
	if err != nil {
		return err
	}
	if header == nil {
		return domain.ErrNotFound
	}
	return uc.purchaseRepo.Delete(id)
}

// Stats conteos por estado para el tablero.
func (uc *UseCase) Stats() (*repository.PurchaseStats, error) {
	return uc.purchaseRepo.Stats()
}

func sumTotals(items []*entity.PurchaseItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:                   p.ID,
		SupplierID:           p.SupplierID,
		SupplierName:         p.SupplierName,
		Purchaser:            p.Purchaser,
		PurchaseDate:         p.PurchaseDate,
		ExpectedDeliveryDate: p.ExpectedDeliveryDate,
		TotalAmount:          p.TotalAmount,
		Status:               p.Status,
		Notes:                p.Notes,
		CreatedAt:            p.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:           it.ID,
			MaterialID:   it.MaterialID,
			MaterialName: it.MaterialName,
			Quantity:     it.Quantity,
			Price:        it.Price,
			Total:        it.Total,
			Status:       it.Status,
		})
	}
	return resp
}
