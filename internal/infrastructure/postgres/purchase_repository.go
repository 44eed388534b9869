package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, supplier_id, supplier_name, purchaser, purchase_date,
	expected_delivery_date, total_amount, status, notes, created_at, updated_at`

// PurchaseRepo persistencia de órdenes de compra sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// CreateHeader persiste la cabecera.
func (r *PurchaseRepo) CreateHeader(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SupplierID, p.SupplierName, p.Purchaser, p.PurchaseDate,
		p.ExpectedDeliveryDate, p.TotalAmount, p.Status, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetHeader obtiene la cabecera por ID.
func (r *PurchaseRepo) GetHeader(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.SupplierName, &p.Purchaser, &p.PurchaseDate,
		&p.ExpectedDeliveryDate, &p.TotalAmount, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// UpdateHeader actualiza la cabecera completa.
func (r *PurchaseRepo) UpdateHeader(p *entity.Purchase) error {
	query := `
		UPDATE purchases SET supplier_id = $2, supplier_name = $3, purchaser = $4,
			purchase_date = $5, expected_delivery_date = $6, total_amount = $7,
			status = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SupplierID, p.SupplierName, p.Purchaser,
		p.PurchaseDate, p.ExpectedDeliveryDate, p.TotalAmount,
		p.Status, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// List lista cabeceras filtrando por estado y búsqueda libre (proveedor o comprador).
func (r *PurchaseRepo) List(status, search string, limit, offset int) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE 1=1`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (supplier_name ILIKE $%d OR purchaser ILIKE $%d)", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY purchase_date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.Purchaser, &p.PurchaseDate,
			&p.ExpectedDeliveryDate, &p.TotalAmount, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete borra líneas y luego cabecera.
func (r *PurchaseRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea.
func (r *PurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, material_id, material_name, quantity, price, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.PurchaseID, it.MaterialID, it.MaterialName, it.Quantity, it.Price, it.Total, it.Status,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// UpdateItem actualiza una línea.
func (r *PurchaseRepo) UpdateItem(it *entity.PurchaseItem) error {
	query := `
		UPDATE purchase_items SET material_id = $2, material_name = $3, quantity = $4,
			price = $5, total = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.MaterialID, it.MaterialName, it.Quantity, it.Price, it.Total, it.Status,
	)
	if err != nil {
		return fmt.Errorf("update purchase item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea por ID.
func (r *PurchaseRepo) DeleteItem(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase item: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una compra en orden de inserción.
func (r *PurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, material_id, material_name, quantity, price, total, status
		FROM purchase_items WHERE purchase_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.MaterialID, &it.MaterialName,
			&it.Quantity, &it.Price, &it.Total, &it.Status); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Stats conteo de compras por estado.
func (r *PurchaseRepo) Stats() (*repository.PurchaseStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'borrador'),
			COUNT(*) FILTER (WHERE status = 'enviada'),
			COUNT(*) FILTER (WHERE status = 'entrega_parcial'),
			COUNT(*) FILTER (WHERE status = 'completada')
		FROM purchases`
	var s repository.PurchaseStats
	err := r.q.QueryRow(context.Background(), query).Scan(&s.Draft, &s.Sent, &s.Partial, &s.Completed)
	if err != nil {
		return nil, fmt.Errorf("purchase stats: %w", err)
	}
	return &s, nil
}
