package reports

import (
	"fmt"
	"time"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// Tope de asientos exportados por kardex. Un ítem con más historial se exporta
// paginado desde el endpoint de movimientos.
const kardexLimit = 5000

const lowStockReportLimit = 500

// ExcelExporter puerto del generador de libros .xlsx.
type ExcelExporter interface {
	KardexWorkbook(item *entity.Item, movements []*entity.StockMovement) ([]byte, error)
	LowStockWorkbook(items []*entity.Item) ([]byte, error)
}

// UseCase genera los reportes exportables de inventario.
type UseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.StockMovementRepository
	exporter     ExcelExporter
}

// NewUseCase construye el caso de uso.
func NewUseCase(itemRepo repository.ItemRepository, movementRepo repository.StockMovementRepository, exporter ExcelExporter) *UseCase {
	return &UseCase{itemRepo: itemRepo, movementRepo: movementRepo, exporter: exporter}
}

// Kardex exporta el historial de movimientos de un ítem a .xlsx.
// Retorna (contenido, filename, nil) o domain.ErrNotFound si el ítem no existe.
func (uc *UseCase) Kardex(itemID string) ([]byte, string, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, "", err
	}
	if item == nil {
		return nil, "", domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByItem(itemID, kardexLimit, 0)
	if err != nil {
		return nil, "", err
	}
	book, err := uc.exporter.KardexWorkbook(item, movements)
	if err != nil {
		return nil, "", fmt.Errorf("reporte kardex: %w", err)
	}
	return book, fmt.Sprintf("kardex-%s.xlsx", item.ID), nil
}

// LowStock exporta los ítems en o bajo su stock de seguridad a .xlsx.
func (uc *UseCase) LowStock() ([]byte, string, error) {
	items, err := uc.itemRepo.List(repository.ItemFilter{LowStock: true}, lowStockReportLimit, 0)
	if err != nil {
		return nil, "", err
	}
	book, err := uc.exporter.LowStockWorkbook(items)
	if err != nil {
		return nil, "", fmt.Errorf("reporte stock bajo: %w", err)
	}
	name := fmt.Sprintf("stock-bajo-%s.xlsx", time.Now().Format("2006-01-02"))
	return book, name, nil
}
