package validate

import (
	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
)

// Customer validates a customer record. The customerType discriminator is
// resolved first; only the selected variant's field group is required, so an
// Individual payload never fails on corporate fields and vice versa.
func Customer(c *entity.Customer) error {
	switch c.CustomerType {
	case entity.CustomerIndividual:
		if err := requireAll([]field{
			{"fullName", c.FullName},
			{"emiratesId", c.EmiratesID},
			{"nationality", c.Nationality},
			{"dob", c.DOB},
			{"gender", c.Gender},
		}); err != nil {
			return err
		}
		if !emiratesIDRe.MatchString(c.EmiratesID) {
			return domain.Invalid("emiratesId", c.EmiratesID+" is not a valid Emirates ID format (784-XXXX-XXXXXXX-X)")
		}
		if !validDate(c.DOB) {
			return domain.Invalid("dob", c.DOB+" is not a valid date (YYYY-MM-DD)")
		}
		if !oneOf(c.Gender, entity.Genders) {
			return domain.Invalid("gender", c.Gender+" is not a valid gender")
		}
	case entity.CustomerCorporate:
		if err := requireAll([]field{
			{"companyName", c.CompanyName},
			{"tradeLicense", c.TradeLicense},
			{"trnNumber", c.TRNNumber},
		}); err != nil {
			return err
		}
		if !trnRe.MatchString(c.TRNNumber) {
			return domain.Invalid("trnNumber", c.TRNNumber+" is not a valid TRN (must be 15 digits)")
		}
	default:
		return domain.Invalid("customerType", "customerType must be Individual or Corporate")
	}

	// Common fields, required regardless of variant.
	if err := requireAll([]field{
		{"email", c.Email},
		{"mobile", c.Mobile},
		{"address", c.Address},
		{"emirate", c.Emirate},
	}); err != nil {
		return err
	}
	if !emailRe.MatchString(c.Email) {
		return domain.Invalid("email", "Please enter a valid email")
	}
	if !uaeMobileRe.MatchString(c.Mobile) {
		return domain.Invalid("mobile", c.Mobile+" is not a valid UAE mobile number (+971XXXXXXXXX)")
	}
	if c.AlternateMobile != "" && !uaeMobileRe.MatchString(c.AlternateMobile) {
		return domain.Invalid("alternateMobile", c.AlternateMobile+" is not a valid UAE mobile number (+971XXXXXXXXX)")
	}
	if !oneOf(c.Emirate, entity.Emirates) {
		return domain.Invalid("emirate", c.Emirate+" is not a valid emirate")
	}
	if c.PreferredLanguage != entity.LanguageEnglish && c.PreferredLanguage != entity.LanguageArabic {
		return domain.Invalid("preferredLanguage", "preferredLanguage must be English or Arabic")
	}
	for _, pm := range c.PaymentMethods {
		if !oneOf(pm.Type, entity.PaymentMethodTypes) {
			return domain.Invalid("paymentMethods", pm.Type+" is not a valid payment method type")
		}
	}
	return nil
}
