package orders

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

// UseCase casos de uso de órdenes de venta. El estado de cabecera es una
// proyección de las líneas: todo write pasa por docstatus antes de persistir.
type UseCase struct {
	orderRepo       repository.OrderRepository
	distributorRepo repository.DistributorRepository
	itemRepo        repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.OrderRepository, distributorRepo repository.DistributorRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo, distributorRepo: distributorRepo, itemRepo: itemRepo}
}

// Create valida y persiste una orden con sus líneas. Los totales de línea y el
// total de cabecera se calculan en servidor; el estado de cabecera se valida
// contra la derivación de las líneas antes de escribir nada.
func (uc *UseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	dist, err := uc.distributorRepo.GetByID(in.DistributorID)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, in.DistributorID)
	}

	header := &entity.Order{
		ID:              uuid.New().String(),
		DistributorID:   dist.ID,
		DistributorName: dist.Name,
		CustomerPO:      in.CustomerPO,
		OrderDate:       in.OrderDate,
		DeliveryDate:    in.DeliveryDate,
		Status:          in.Status,
		DeliveryMethod:  in.DeliveryMethod,
		ShippingCompany: in.ShippingCompany,
		ShippingAddress: in.ShippingAddress,
		ContactPerson:   in.ContactPerson,
		ContactPhone:    in.ContactPhone,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if header.Status == "" {
		header.Status = entity.OrderStatusPending
	}

	items, lineStatuses, err := uc.buildItems(header.ID, in.Items, nil)
	if err != nil {
		return nil, err
	}
	if err := docstatus.ValidateShippingDetails(header); err != nil {
		return nil, err
	}
	if err := docstatus.ValidateOrderStatus(header.Status, lineStatuses); err != nil {
		return nil, err
	}
	header.TotalAmount = sumTotals(items)

	if err := uc.orderRepo.CreateHeader(header); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := uc.orderRepo.CreateItem(it); err != nil {
			return nil, err
		}
	}
	return toOrderResponse(header, items), nil
}

// buildItems arma las líneas validando producto, cantidad y, para líneas que
// ya existen, la legalidad de la transición de estado.
func (uc *UseCase) buildItems(orderID string, inputs []dto.OrderItemInput, existing map[string]*entity.OrderItem) ([]*entity.OrderItem, []string, error) {
	items := make([]*entity.OrderItem, 0, len(inputs))
	statuses := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, nil, domain.ErrInvalidQuantity
		}
		product, err := uc.itemRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product == nil || product.Kind != entity.ItemKindProduct {
			return nil, nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
		}

		status := in.Status
		if status == "" {
			status = entity.OrderItemStatusUnreceived
		}
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		} else if prev, ok := existing[id]; ok {
			if err := docstatus.ValidateOrderItemTransition(prev.Status, status); err != nil {
				return nil, nil, err
			}
		}

		item := &entity.OrderItem{
			ID:          id,
			OrderID:     orderID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Status:      status,
		}
		item.Total = item.LineTotal()
		items = append(items, item)
		statuses = append(statuses, status)
	}
	return items, statuses, nil
}

// Update reescribe cabecera y líneas: líneas con ID se actualizan (validando
// la transición), líneas nuevas se insertan y las ausentes se eliminan. El
// estado de cabecera enviado se rechaza con StatusConflict si contradice la
// derivación de las líneas resultantes.
func (uc *UseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	header, err := uc.orderRepo.GetHeader(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	prevItems, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]*entity.OrderItem, len(prevItems))
	for _, it := range prevItems {
		existing[it.ID] = it
	}

	items, lineStatuses, err := uc.buildItems(id, in.Items, existing)
	if err != nil {
		return nil, err
	}

	if in.DistributorID != "" && in.DistributorID != header.DistributorID {
		dist, err := uc.distributorRepo.GetByID(in.DistributorID)
		if err != nil {
			return nil, err
		}
		if dist == nil {
			return nil, fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, in.DistributorID)
		}
		header.DistributorID = dist.ID
		header.DistributorName = dist.Name
	}
	header.CustomerPO = in.CustomerPO
	header.OrderDate = in.OrderDate
	header.DeliveryDate = in.DeliveryDate
	header.DeliveryMethod = in.DeliveryMethod
	header.ShippingCompany = in.ShippingCompany
	header.ShippingAddress = in.ShippingAddress
	header.ContactPerson = in.ContactPerson
	header.ContactPhone = in.ContactPhone
	header.Notes = in.Notes
	if in.Status != "" {
		header.Status = in.Status
	}

	if err := docstatus.ValidateShippingDetails(header); err != nil {
		return nil, err
	}
	if err := docstatus.ValidateOrderStatus(header.Status, lineStatuses); err != nil {
		return nil, err
	}
	header.TotalAmount = sumTotals(items)
	header.UpdatedAt = time.Now()

	if err := uc.orderRepo.UpdateHeader(header); err != nil {
		return nil, err
	}
	kept := make(map[string]bool, len(items))
	for _, it := range items {
		kept[it.ID] = true
		if _, ok := existing[it.ID]; ok {
			err = uc.orderRepo.UpdateItem(it)
		} else {
			err = uc.orderRepo.CreateItem(it)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, prev := range prevItems {
		if !kept[prev.ID] {
			if err := uc.orderRepo.DeleteItem(prev.ID); err != nil {
				return nil, err
			}
		}
	}
	return toOrderResponse(header, items), nil
}

// UpdateItemStatus cambia el estado de una línea y recalcula la cabecera:
// si el estado actual viola la derivación se fuerza al valor derivado.
func (uc *UseCase) UpdateItemStatus(orderID, itemID, status string) (*dto.OrderResponse, error) {
	header, err := uc.orderRepo.GetHeader(orderID)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.orderRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrderID != orderID {
		return nil, domain.ErrNotFound
	}
	if err := docstatus.ValidateOrderItemTransition(item.Status, status); err != nil {
		return nil, err
	}
	item.Status = status
	if err := uc.orderRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	items, err := uc.orderRepo.ListItems(orderID)
	if err != nil {
		return nil, err
	}
	statuses := make([]string, 0, len(items))
	for _, it := range items {
		statuses = append(statuses, it.Status)
	}
	if derived := docstatus.RecomputeOrderStatus(header.Status, statuses); derived != header.Status {
		header.Status = derived
		header.UpdatedAt = time.Now()
		if err := uc.orderRepo.UpdateHeader(header); err != nil {
			return nil, err
		}
	}
	return toOrderResponse(header, items), nil
}

// UpdateStatus cambia solo el estado de cabecera. Un valor que contradiga la
// derivación de las líneas se rechaza con StatusConflict.
func (uc *UseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusProcessing, entity.OrderStatusAwaiting, entity.OrderStatusDone:
	default:
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	header, err := uc.orderRepo.GetHeader(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	statuses := make([]string, 0, len(items))
	for _, it := range items {
		statuses = append(statuses, it.Status)
	}
	if err := docstatus.ValidateOrderStatus(status, statuses); err != nil {
		return nil, err
	}
	header.Status = status
	header.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateHeader(header); err != nil {
		return nil, err
	}
	return toOrderResponse(header, items), nil
}

// GetWithItems devuelve cabecera + líneas.
func (uc *UseCase) GetWithItems(id string) (*dto.OrderResponse, error) {
	header, err := uc.orderRepo.GetHeader(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(header, items), nil
}

// List lista cabeceras filtrando por estado y búsqueda libre.
func (uc *UseCase) List(status, search string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(status, search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{Orders: out, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete elimina la orden y sus líneas.
func (uc *UseCase) Delete(id string) error {
	header, err := uc.orderRepo.GetHeader(id)
	if err != nil {
		return err
	}
	if header == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

// Stats conteos por estado para el tablero.
func (uc *UseCase) Stats() (*repository.OrderStats, error) {
	return uc.orderRepo.Stats()
}

func sumTotals(items []*entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              o.ID,
		DistributorID:   o.DistributorID,
		DistributorName: o.DistributorName,
		CustomerPO:      o.CustomerPO,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		DeliveryMethod:  o.DeliveryMethod,
		ShippingCompany: o.ShippingCompany,
		ShippingAddress: o.ShippingAddress,
		ContactPerson:   o.ContactPerson,
		ContactPhone:    o.ContactPhone,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Total:       it.Total,
			Status:      it.Status,
		})
	}
	return resp
}
