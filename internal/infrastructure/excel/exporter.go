// Package excel genera los reportes .xlsx de inventario con excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/filtros-erp/internal/application/reports"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
)

var _ reports.ExcelExporter = (*Exporter)(nil)

// Exporter implementa el puerto de reportes sobre excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

const sheet = "Sheet1"

// KardexWorkbook arma el libro de historial de movimientos de un ítem.
// Los movimientos llegan más reciente primero; el saldo se reconstruye hacia
// atrás desde el stock actual.
func (e *Exporter) KardexWorkbook(item *entity.Item, movements []*entity.StockMovement) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetCellValue(sheet, "A1", "Ítem")
	f.SetCellValue(sheet, "B1", item.Name)
	f.SetCellValue(sheet, "A2", "Stock actual")
	f.SetCellValue(sheet, "B2", item.Stock)

	headers := []string{"Fecha", "Tipo", "Cantidad", "Saldo", "Usuario", "Nota"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}

	balance := item.Stock
	for i, m := range movements {
		row := i + 5
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), balance)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.UserName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.Note)
		balance -= m.Signed()
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// LowStockWorkbook arma el libro de ítems bajo su stock de seguridad.
func (e *Exporter) LowStockWorkbook(items []*entity.Item) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headers := []string{"Clase", "Categoría", "Eficiencia", "Nombre", "Stock", "Stock de seguridad"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, it := range items {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), it.Kind)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), it.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), it.Efficiency)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), it.Name)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), it.Stock)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), it.SafetyStock)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
