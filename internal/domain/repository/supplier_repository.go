package repository

import "github.com/gulfwms/wms-api/internal/domain/entity"

// SupplierRepository persistence port for Supplier. List search covers
// name/contactPerson/email. Unique indexes on tradeLicense and trnNumber
// surface as domain.ConflictError from Create/Replace.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(search string) ([]*entity.Supplier, error)
	Replace(s *entity.Supplier) error
	Delete(id string) error
}
