package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gulfwms/wms-api/internal/application/dto"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
	"github.com/gulfwms/wms-api/internal/domain/validate"
)

// SupplierUseCase CRUD use cases for suppliers. Fields are trimmed before
// validation; tradeLicense/trnNumber uniqueness is the store's job.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create validates and persists a new supplier.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := supplierFromRequest(in)
	supplier.ID = uuid.New().String()
	supplier.CreatedAt = now
	supplier.LastUpdated = now
	if err := validate.Supplier(supplier); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update fully replaces an existing supplier. Returns (nil, nil) for an
// unknown id.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	supplier := supplierFromRequest(in)
	supplier.ID = id
	supplier.CreatedAt = existing.CreatedAt
	supplier.LastUpdated = time.Now()
	if err := validate.Supplier(supplier); err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List returns suppliers, optionally filtered by a free-text search.
func (uc *SupplierUseCase) List(search string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Delete removes a supplier; domain.ErrNotFound passes through.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func supplierFromRequest(in dto.SupplierRequest) *entity.Supplier {
	return &entity.Supplier{
		Name:              strings.TrimSpace(in.Name),
		ContactPerson:     strings.TrimSpace(in.ContactPerson),
		Email:             strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:             strings.TrimSpace(in.Phone),
		Address:           strings.TrimSpace(in.Address),
		TradeLicense:      strings.TrimSpace(in.TradeLicense),
		TRNNumber:         strings.TrimSpace(in.TRNNumber),
		Jurisdiction:      strings.TrimSpace(in.Jurisdiction),
		EstablishmentYear: strings.TrimSpace(in.EstablishmentYear),
		BankDetails:       strings.TrimSpace(in.BankDetails),
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:                s.ID,
		Name:              s.Name,
		ContactPerson:     s.ContactPerson,
		Email:             s.Email,
		Phone:             s.Phone,
		Address:           s.Address,
		TradeLicense:      s.TradeLicense,
		TRNNumber:         s.TRNNumber,
		Jurisdiction:      s.Jurisdiction,
		EstablishmentYear: s.EstablishmentYear,
		BankDetails:       s.BankDetails,
		CreatedAt:         s.CreatedAt,
		LastUpdated:       s.LastUpdated,
	}
}
