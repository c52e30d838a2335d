package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `
	id, code, name, location, address, contact_person, contact_number,
	total_capacity, used_capacity, type, status, created_at, last_updated`

// WarehouseRepo implements WarehouseRepository over PostgreSQL.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository builds the persistence adapter for warehouses.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// Create persists a new warehouse.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		w.ID, w.Code, w.Name, w.Location, w.Address, w.ContactPerson, w.ContactNumber,
		w.TotalCapacity, w.UsedCapacity, w.Type, w.Status, w.CreatedAt, w.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	w, err := scanWarehouse(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// List returns warehouses in insertion order; search filters over
// name/code/location.
func (r *WarehouseRepo) List(search string) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR code ILIKE $1 OR location ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Replace overwrites the editable fields. used_capacity and created_at stay
// as stored: the former is server-derived, the latter immutable.
func (r *WarehouseRepo) Replace(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET code = $2, name = $3, location = $4, address = $5,
			contact_person = $6, contact_number = $7, total_capacity = $8,
			type = $9, status = $10, last_updated = $11
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		w.ID, w.Code, w.Name, w.Location, w.Address,
		w.ContactPerson, w.ContactNumber, w.TotalCapacity,
		w.Type, w.Status, w.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a warehouse; a missing id is reported.
func (r *WarehouseRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.Code, &w.Name, &w.Location, &w.Address, &w.ContactPerson, &w.ContactNumber,
		&w.TotalCapacity, &w.UsedCapacity, &w.Type, &w.Status, &w.CreatedAt, &w.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
