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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `
	id, customer_type, full_name, emirates_id, passport_number, nationality,
	dob, gender, company_name, trade_license, trn_number, email, mobile,
	alternate_mobile, address, emirate, po_box, preferred_language,
	payment_methods, kyc_verified, created_at, last_updated`

// CustomerRepo implements CustomerRepository over PostgreSQL.
// The unique index on email turns duplicate creations into ConflictError.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository builds the persistence adapter for customers.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.CustomerType, c.FullName, c.EmiratesID, c.PassportNumber, c.Nationality,
		c.DOB, c.Gender, c.CompanyName, c.TradeLicense, c.TRNNumber, c.Email, c.Mobile,
		c.AlternateMobile, c.Address, c.Emirate, c.POBox, c.PreferredLanguage,
		c.PaymentMethods, c.KYCVerified, c.CreatedAt, c.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List returns customers newest-created first. A non-empty search filters
// case-insensitively over the indexed searchable columns.
func (r *CustomerRepo) List(search string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if search != "" {
		query += `
		WHERE full_name ILIKE $1 OR company_name ILIKE $1 OR emirates_id ILIKE $1
			OR trade_license ILIKE $1 OR trn_number ILIKE $1 OR email ILIKE $1
			OR mobile ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Replace overwrites every editable field of an existing customer.
// created_at is deliberately left untouched.
func (r *CustomerRepo) Replace(c *entity.Customer) error {
	query := `
		UPDATE customers SET customer_type = $2, full_name = $3, emirates_id = $4,
			passport_number = $5, nationality = $6, dob = $7, gender = $8,
			company_name = $9, trade_license = $10, trn_number = $11, email = $12,
			mobile = $13, alternate_mobile = $14, address = $15, emirate = $16,
			po_box = $17, preferred_language = $18, payment_methods = $19,
			kyc_verified = $20, last_updated = $21
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		c.ID, c.CustomerType, c.FullName, c.EmiratesID,
		c.PassportNumber, c.Nationality, c.DOB, c.Gender,
		c.CompanyName, c.TradeLicense, c.TRNNumber, c.Email,
		c.Mobile, c.AlternateMobile, c.Address, c.Emirate,
		c.POBox, c.PreferredLanguage, c.PaymentMethods,
		c.KYCVerified, c.LastUpdated,
	)
	if err != nil {
		if conflict := asConflict(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a customer; a missing id is reported, not silently ignored.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats aggregates counts for the dashboard: totals, split by type, KYC
// status, emirate, plus the five most recent customers.
func (r *CustomerRepo) Stats() (*repository.CustomerStats, error) {
	ctx := context.Background()
	stats := &repository.CustomerStats{
		ByType:    map[string]int{},
		ByEmirate: map[string]int{},
		KYC:       map[bool]int{},
	}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT customer_type, COUNT(*) FROM customers GROUP BY customer_type`)
	if err != nil {
		return nil, fmt.Errorf("stats by type: %w", err)
	}
	if err := collectCounts(rows, stats.ByType); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT emirate, COUNT(*) FROM customers GROUP BY emirate`)
	if err != nil {
		return nil, fmt.Errorf("stats by emirate: %w", err)
	}
	if err := collectCounts(rows, stats.ByEmirate); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT kyc_verified, COUNT(*) FROM customers GROUP BY kyc_verified`)
	if err != nil {
		return nil, fmt.Errorf("stats by kyc: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var verified bool
		var n int
		if err := rows.Scan(&verified, &n); err != nil {
			return nil, fmt.Errorf("scan kyc count: %w", err)
		}
		stats.KYC[verified] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `
		SELECT id, COALESCE(NULLIF(full_name, ''), company_name), customer_type, created_at
		FROM customers ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("recent customers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rc repository.RecentCustomer
		if err := rows.Scan(&rc.ID, &rc.Name, &rc.CustomerType, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent customer: %w", err)
		}
		stats.Recent = append(stats.Recent, rc)
	}
	return stats, rows.Err()
}

func collectCounts(rows pgx.Rows, dst map[string]int) error {
	defer rows.Close()
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan count: %w", err)
		}
		dst[key] = n
	}
	return rows.Err()
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.CustomerType, &c.FullName, &c.EmiratesID, &c.PassportNumber, &c.Nationality,
		&c.DOB, &c.Gender, &c.CompanyName, &c.TradeLicense, &c.TRNNumber, &c.Email, &c.Mobile,
		&c.AlternateMobile, &c.Address, &c.Emirate, &c.POBox, &c.PreferredLanguage,
		&c.PaymentMethods, &c.KYCVerified, &c.CreatedAt, &c.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
