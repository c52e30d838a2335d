package validate

import (
	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
)

// Supplier validates a supplier record. Every field is required; there is no
// cross-field conditional logic. Callers trim fields before validation.
func Supplier(s *entity.Supplier) error {
	if err := requireAll([]field{
		{"name", s.Name},
		{"contactPerson", s.ContactPerson},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"tradeLicense", s.TradeLicense},
		{"trnNumber", s.TRNNumber},
		{"jurisdiction", s.Jurisdiction},
		{"establishmentYear", s.EstablishmentYear},
		{"bankDetails", s.BankDetails},
	}); err != nil {
		return err
	}
	if !emailRe.MatchString(s.Email) {
		return domain.Invalid("email", "Please fill a valid email address")
	}
	return nil
}
