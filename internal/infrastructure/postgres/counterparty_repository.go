package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

var _ repository.DistributorRepository = (*DistributorRepo)(nil)
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// DistributorRepo persistencia de distribuidores sobre PostgreSQL.
type DistributorRepo struct {
	q Querier
}

// NewDistributorRepository construye el adaptador.
func NewDistributorRepository(q Querier) *DistributorRepo {
	return &DistributorRepo{q: q}
}

// Create persiste un distribuidor.
func (r *DistributorRepo) Create(d *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, name, phone, fax, tax_id, address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Phone, d.Fax, d.TaxID, d.Address, d.Notes, d.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distributor: %w", err)
	}
	return nil
}

// GetByID obtiene un distribuidor por ID.
func (r *DistributorRepo) GetByID(id string) (*entity.Distributor, error) {
	query := `SELECT id, name, phone, fax, tax_id, address, notes, created_at FROM distributors WHERE id = $1`
	var d entity.Distributor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Phone, &d.Fax, &d.TaxID, &d.Address, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	return &d, nil
}

// List lista distribuidores con búsqueda por nombre y paginación.
func (r *DistributorRepo) List(search string, limit, offset int) ([]*entity.Distributor, error) {
	query := `SELECT id, name, phone, fax, tax_id, address, notes, created_at FROM distributors`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE name ILIKE $%d", pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Fax, &d.TaxID, &d.Address, &d.Notes, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un distribuidor.
func (r *DistributorRepo) Update(d *entity.Distributor) error {
	query := `
		UPDATE distributors SET name = $2, phone = $3, fax = $4, tax_id = $5, address = $6, notes = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Phone, d.Fax, d.TaxID, d.Address, d.Notes,
	)
	if err != nil {
		return fmt.Errorf("update distributor: %w", err)
	}
	return nil
}

// Delete elimina un distribuidor por ID.
func (r *DistributorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el distribuidor tiene órdenes asociadas", domain.ErrInUse)
		}
		return fmt.Errorf("delete distributor: %w", err)
	}
	return nil
}

// SupplierRepo persistencia de proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, phone, fax, tax_id, address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Phone, s.Fax, s.TaxID, s.Address, s.Notes, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, phone, fax, tax_id, address, notes, created_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.Fax, &s.TaxID, &s.Address, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores con búsqueda por nombre y paginación.
func (r *SupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, phone, fax, tax_id, address, notes, created_at FROM suppliers`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE name ILIKE $%d", pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Fax, &s.TaxID, &s.Address, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, phone = $3, fax = $4, tax_id = $5, address = $6, notes = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Phone, s.Fax, s.TaxID, s.Address, s.Notes,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el proveedor tiene compras asociadas", domain.ErrInUse)
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
