package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gulfwms/wms-api/internal/application/dto"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
	"github.com/gulfwms/wms-api/internal/domain/validate"
)

// CustomerUseCase CRUD use cases for customers. Payloads are validated
// discriminator-first before touching the store; email uniqueness is left to
// the store's own constraint so concurrent creations serialize there.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create validates and persists a new customer.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now()
	customer := customerFromRequest(in)
	customer.ID = uuid.New().String()
	customer.CreatedAt = now
	customer.LastUpdated = now
	if err := validate.Customer(customer); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update fully replaces the editable fields of an existing customer.
// Returns (nil, nil) when the id is unknown. createdAt survives the replace;
// lastUpdated is restamped.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	customer := customerFromRequest(in)
	customer.ID = id
	customer.CreatedAt = existing.CreatedAt
	customer.LastUpdated = time.Now()
	if err := validate.Customer(customer); err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List returns customers newest first, optionally filtered by a free-text search.
func (uc *CustomerUseCase) List(search string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Delete removes a customer; domain.ErrNotFound passes through for unknown ids.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Stats aggregates the dashboard counters.
func (uc *CustomerUseCase) Stats() (*dto.CustomerStatsResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerStatsResponse{
		Total:     stats.Total,
		ByType:    stats.ByType,
		ByEmirate: stats.ByEmirate,
		KYC: dto.KYCStats{
			Verified: stats.KYC[true],
			Pending:  stats.KYC[false],
		},
	}
	for _, rc := range stats.Recent {
		out.Recent = append(out.Recent, dto.RecentCustomerResponse{
			ID:           rc.ID,
			Name:         rc.Name,
			CustomerType: rc.CustomerType,
			CreatedAt:    rc.CreatedAt,
		})
	}
	return out, nil
}

// customerFromRequest maps the payload onto the entity, defaults the
// language, and blanks whichever variant group the discriminator rules out
// (a type switch clears the other group's fields).
func customerFromRequest(in dto.CustomerRequest) *entity.Customer {
	c := &entity.Customer{
		CustomerType:      in.CustomerType,
		FullName:          in.FullName,
		EmiratesID:        in.EmiratesID,
		PassportNumber:    in.PassportNumber,
		Nationality:       in.Nationality,
		DOB:               in.DOB,
		Gender:            in.Gender,
		CompanyName:       in.CompanyName,
		TradeLicense:      in.TradeLicense,
		TRNNumber:         in.TRNNumber,
		Email:             in.Email,
		Mobile:            in.Mobile,
		AlternateMobile:   in.AlternateMobile,
		Address:           in.Address,
		Emirate:           in.Emirate,
		POBox:             in.POBox,
		PreferredLanguage: in.PreferredLanguage,
		PaymentMethods:    in.PaymentMethods,
		KYCVerified:       in.KYCVerified,
	}
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = entity.LanguageEnglish
	}
	if c.PaymentMethods == nil {
		c.PaymentMethods = []entity.PaymentMethod{}
	}
	c.ClearInactiveVariant()
	return c
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:                c.ID,
		CustomerType:      c.CustomerType,
		FullName:          c.FullName,
		EmiratesID:        c.EmiratesID,
		PassportNumber:    c.PassportNumber,
		Nationality:       c.Nationality,
		DOB:               c.DOB,
		Gender:            c.Gender,
		CompanyName:       c.CompanyName,
		TradeLicense:      c.TradeLicense,
		TRNNumber:         c.TRNNumber,
		Email:             c.Email,
		Mobile:            c.Mobile,
		AlternateMobile:   c.AlternateMobile,
		Address:           c.Address,
		Emirate:           c.Emirate,
		POBox:             c.POBox,
		PreferredLanguage: c.PreferredLanguage,
		PaymentMethods:    c.PaymentMethods,
		KYCVerified:       c.KYCVerified,
		CreatedAt:         c.CreatedAt,
		LastUpdated:       c.LastUpdated,
	}
}
