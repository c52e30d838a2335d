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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `
	id, name, contact_person, email, phone, address, trade_license,
	trn_number, jurisdiction, establishment_year, bank_details,
	created_at, last_updated`

// SupplierRepo implements SupplierRepository over PostgreSQL. Unique indexes
// on trade_license and trn_number back the conflict semantics.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository builds the persistence adapter for suppliers.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persists a new supplier.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.TradeLicense,
		s.TRNNumber, s.Jurisdiction, s.EstablishmentYear, s.BankDetails,
		s.CreatedAt, s.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// List returns suppliers in insertion order; search filters over
// name/contactPerson/email.
func (r *SupplierRepo) List(search string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR contact_person ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Replace overwrites every editable field; created_at is untouched.
func (r *SupplierRepo) Replace(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_person = $3, email = $4, phone = $5,
			address = $6, trade_license = $7, trn_number = $8, jurisdiction = $9,
			establishment_year = $10, bank_details = $11, last_updated = $12
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone,
		s.Address, s.TradeLicense, s.TRNNumber, s.Jurisdiction,
		s.EstablishmentYear, s.BankDetails, s.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a supplier; a missing id is reported.
func (r *SupplierRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.TradeLicense,
		&s.TRNNumber, &s.Jurisdiction, &s.EstablishmentYear, &s.BankDetails,
		&s.CreatedAt, &s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
