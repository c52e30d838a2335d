package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gulfwms/wms-api/internal/domain"
)

// conflictFields maps unique constraint names (migrations/001_init.sql) to
// the payload field reported back to the client.
var conflictFields = map[string]string{
	"customers_email_key":         "email",
	"suppliers_trade_license_key": "tradeLicense",
	"suppliers_trn_number_key":    "trnNumber",
	"users_username_key":          "username",
	"inventory_items_sku_key":     "sku",
	"warehouses_code_key":         "code",
}

// asConflict converts a unique-violation (23505) into a domain.ConflictError
// naming the duplicated field. Any other error passes through unchanged.
// Relying on the database constraint means two concurrent creations with the
// same value are serialized by the store: the second one lands here.
func asConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		if field, ok := conflictFields[pgErr.ConstraintName]; ok {
			return domain.Conflict(field)
		}
		return domain.ErrDuplicate
	}
	return err
}
