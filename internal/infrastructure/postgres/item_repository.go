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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `
	id, sku, name, description, category, barcode, barcode_type,
	barcode_outer_box, unit_of_measure, cost_price, selling_price, tax_rate,
	current_stock, min_stock_level, supplier_id, supplier_name,
	warehouse_id, warehouse_name, location, created_at, last_updated`

// ItemRepo implements ItemRepository over PostgreSQL. Money and tax fields
// are NUMERIC scanned through the shopspring/decimal codec.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository builds the persistence adapter for inventory items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create persists a new inventory item.
func (r *ItemRepo) Create(i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21)`
	_, err := r.pool.Exec(context.Background(), query,
		i.ID, i.SKU, i.Name, i.Description, i.Category, i.Barcode, i.BarcodeType,
		i.BarcodeOuterBox, i.UnitOfMeasure, i.CostPrice, i.SellingPrice, i.TaxRate,
		i.CurrentStock, i.MinStockLevel, i.SupplierID, i.SupplierName,
		i.WarehouseID, i.WarehouseName, i.Location, i.CreatedAt, i.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	i, err := scanItem(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return i, nil
}

// List returns items in insertion order; search filters over
// name/sku/barcode/warehouseName.
func (r *ItemRepo) List(search string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR sku ILIKE $1 OR barcode ILIKE $1 OR warehouse_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Replace overwrites every editable field; created_at is untouched.
func (r *ItemRepo) Replace(i *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET sku = $2, name = $3, description = $4,
			category = $5, barcode = $6, barcode_type = $7, barcode_outer_box = $8,
			unit_of_measure = $9, cost_price = $10, selling_price = $11,
			tax_rate = $12, current_stock = $13, min_stock_level = $14,
			supplier_id = $15, supplier_name = $16, warehouse_id = $17,
			warehouse_name = $18, location = $19, last_updated = $20
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		i.ID, i.SKU, i.Name, i.Description,
		i.Category, i.Barcode, i.BarcodeType, i.BarcodeOuterBox,
		i.UnitOfMeasure, i.CostPrice, i.SellingPrice,
		i.TaxRate, i.CurrentStock, i.MinStockLevel,
		i.SupplierID, i.SupplierName, i.WarehouseID,
		i.WarehouseName, i.Location, i.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an item; a missing id is reported.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.SKU, &i.Name, &i.Description, &i.Category, &i.Barcode, &i.BarcodeType,
		&i.BarcodeOuterBox, &i.UnitOfMeasure, &i.CostPrice, &i.SellingPrice, &i.TaxRate,
		&i.CurrentStock, &i.MinStockLevel, &i.SupplierID, &i.SupplierName,
		&i.WarehouseID, &i.WarehouseName, &i.Location, &i.CreatedAt, &i.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
