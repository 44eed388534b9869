package dashboard

import (
	"time"

	"github.com/jhoicas/filtros-erp/internal/application/catalog"
	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// Ítems de inventario bajo mostrados en el tablero.
const lowStockLimit = 20

// UseCase agrega los números de la pantalla principal: conteos de órdenes y
// compras por estado, ítems bajo stock de seguridad y venta del mes.
type UseCase struct {
	orderRepo    repository.OrderRepository
	purchaseRepo repository.PurchaseRepository
	catalogUC    *catalog.UseCase
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.OrderRepository, purchaseRepo repository.PurchaseRepository, catalogUC *catalog.UseCase) *UseCase {
	return &UseCase{orderRepo: orderRepo, purchaseRepo: purchaseRepo, catalogUC: catalogUC}
}

// Summary arma la respuesta del tablero.
func (uc *UseCase) Summary() (*dto.DashboardResponse, error) {
	var resp dto.DashboardResponse

	orderStats, err := uc.orderRepo.Stats()
	if err != nil {
		return nil, err
	}
	resp.Orders.Pending = orderStats.Pending
	resp.Orders.Processing = orderStats.Processing
	resp.Orders.Awaiting = orderStats.Awaiting
	resp.Orders.Done = orderStats.Done

	purchaseStats, err := uc.purchaseRepo.Stats()
	if err != nil {
		return nil, err
	}
	resp.Purchases.Draft = purchaseStats.Draft
	resp.Purchases.Sent = purchaseStats.Sent
	resp.Purchases.Partial = purchaseStats.Partial
	resp.Purchases.Completed = purchaseStats.Completed

	lowStock, err := uc.catalogUC.LowStockItems(lowStockLimit)
	if err != nil {
		return nil, err
	}
	resp.LowStockItems = lowStock

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	total, err := uc.orderRepo.TotalForRange(monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	resp.MonthOrderTotal = total

	return &resp, nil
}
