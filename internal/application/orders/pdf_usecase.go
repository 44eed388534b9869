package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// OrderSheetGenerator puerto del generador de la hoja de pedido imprimible.
type OrderSheetGenerator interface {
	GenerateOrderSheet(ctx context.Context, order *entity.Order, distributor *entity.Distributor, items []*entity.OrderItem) ([]byte, error)
}

// PDFUseCase genera la hoja de pedido en PDF (para imprimir y adjuntar al despacho).
type PDFUseCase struct {
	orderRepo       repository.OrderRepository
	distributorRepo repository.DistributorRepository
	generator       OrderSheetGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orderRepo repository.OrderRepository, distributorRepo repository.DistributorRepository, generator OrderSheetGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, distributorRepo: distributorRepo, generator: generator}
}

// DownloadOrderSheet carga la orden completa y genera el PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la orden no existe.
func (uc *PDFUseCase) DownloadOrderSheet(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetHeader(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	dist, err := uc.distributorRepo.GetByID(order.DistributorID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener distribuidor: %w", err)
	}
	if dist == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItems(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	pdf, err := uc.generator.GenerateOrderSheet(ctx, order, dist, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar hoja de pedido: %w", err)
	}
	return pdf, fmt.Sprintf("orden-%s.pdf", order.ID), nil
}
