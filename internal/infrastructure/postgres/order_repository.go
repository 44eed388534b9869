package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, distributor_id, distributor_name, customer_po, order_date, delivery_date,
	total_amount, status, delivery_method, shipping_company, shipping_address,
	contact_person, contact_phone, notes, created_at, updated_at`

// OrderRepo persistencia de órdenes de venta sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// CreateHeader persiste la cabecera.
func (r *OrderRepo) CreateHeader(o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.DistributorID, o.DistributorName, o.CustomerPO, o.OrderDate, o.DeliveryDate,
		o.TotalAmount, o.Status, o.DeliveryMethod, o.ShippingCompany, o.ShippingAddress,
		o.ContactPerson, o.ContactPhone, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetHeader obtiene la cabecera por ID.
func (r *OrderRepo) GetHeader(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.DistributorID, &o.DistributorName, &o.CustomerPO, &o.OrderDate, &o.DeliveryDate,
		&o.TotalAmount, &o.Status, &o.DeliveryMethod, &o.ShippingCompany, &o.ShippingAddress,
		&o.ContactPerson, &o.ContactPhone, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// UpdateHeader actualiza la cabecera completa.
func (r *OrderRepo) UpdateHeader(o *entity.Order) error {
	query := `
		UPDATE orders SET distributor_id = $2, distributor_name = $3, customer_po = $4,
			order_date = $5, delivery_date = $6, total_amount = $7, status = $8,
			delivery_method = $9, shipping_company = $10, shipping_address = $11,
			contact_person = $12, contact_phone = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.DistributorID, o.DistributorName, o.CustomerPO,
		o.OrderDate, o.DeliveryDate, o.TotalAmount, o.Status,
		o.DeliveryMethod, o.ShippingCompany, o.ShippingAddress,
		o.ContactPerson, o.ContactPhone, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista cabeceras filtrando por estado y búsqueda libre (distribuidor o PO).
func (r *OrderRepo) List(status, search string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (distributor_name ILIKE $%d OR customer_po ILIKE $%d)", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY order_date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryHeaders(query, args...)
}

// ListByDistributor lista las órdenes de un distribuidor, más recientes primero.
func (r *OrderRepo) ListByDistributor(distributorID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE distributor_id = $1 ORDER BY order_date DESC`
	return r.queryHeaders(query, distributorID)
}

func (r *OrderRepo) queryHeaders(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.DistributorID, &o.DistributorName, &o.CustomerPO, &o.OrderDate, &o.DeliveryDate,
			&o.TotalAmount, &o.Status, &o.DeliveryMethod, &o.ShippingCompany, &o.ShippingAddress,
			&o.ContactPerson, &o.ContactPhone, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete borra líneas y luego cabecera.
func (r *OrderRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea.
func (r *OrderRepo) CreateItem(it *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.OrderID, it.ProductID, it.ProductName, it.Quantity, it.Price, it.Total, it.Status,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// UpdateItem actualiza una línea.
func (r *OrderRepo) UpdateItem(it *entity.OrderItem) error {
	query := `
		UPDATE order_items SET product_id = $2, product_name = $3, quantity = $4,
			price = $5, total = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.ProductID, it.ProductName, it.Quantity, it.Price, it.Total, it.Status,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea por ID.
func (r *OrderRepo) DeleteItem(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una orden en orden de inserción.
func (r *OrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, price, total, status
		FROM order_items WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.Price, &it.Total, &it.Status); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetItem obtiene una línea por ID.
func (r *OrderRepo) GetItem(id string) (*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, price, total, status
		FROM order_items WHERE id = $1`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
		&it.Quantity, &it.Price, &it.Total, &it.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// Stats conteo de órdenes por estado.
func (r *OrderRepo) Stats() (*repository.OrderStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pendiente'),
			COUNT(*) FILTER (WHERE status = 'en_proceso'),
			COUNT(*) FILTER (WHERE status = 'por_despachar'),
			COUNT(*) FILTER (WHERE status = 'completada')
		FROM orders`
	var s repository.OrderStats
	err := r.q.QueryRow(context.Background(), query).Scan(&s.Pending, &s.Processing, &s.Awaiting, &s.Done)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return &s, nil
}

// TotalForRange suma el total de las órdenes con order_date en [from, to).
func (r *OrderRepo) TotalForRange(from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE order_date >= $1 AND order_date < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("order total for range: %w", err)
	}
	return total, nil
}
