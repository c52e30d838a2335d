package entity

import "time"

// Customer types. The discriminator selects which field group is mandatory.
const (
	CustomerIndividual = "Individual"
	CustomerCorporate  = "Corporate"
)

// Genders accepted for individual customers.
var Genders = []string{"Male", "Female", "Other"}

// Emirates the seven UAE emirates accepted for the emirate field.
var Emirates = []string{
	"Abu Dhabi", "Dubai", "Sharjah", "Ajman",
	"Umm Al Quwain", "Ras Al Khaimah", "Fujairah",
}

// Preferred languages.
const (
	LanguageEnglish = "English"
	LanguageArabic  = "Arabic"
)

// PaymentMethodTypes accepted values for a payment method entry.
var PaymentMethodTypes = []string{"Cash", "Card", "Bank Transfer", "Digital Wallet"}

// PaymentMethod one entry of a customer's ordered payment method list.
type PaymentMethod struct {
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// Customer is a tagged union keyed by CustomerType: Individual records carry
// the personal identity group, Corporate records the company group. Exactly
// one group is populated; switching type clears the other group.
type Customer struct {
	ID           string
	CustomerType string

	// Individual fields
	FullName       string
	EmiratesID     string // 784-XXXX-XXXXXXX-X
	PassportNumber string
	Nationality    string
	DOB            string // YYYY-MM-DD
	Gender         string

	// Corporate fields
	CompanyName  string
	TradeLicense string
	TRNNumber    string // 15 digits

	// Common fields
	Email             string
	Mobile            string // +971XXXXXXXXX
	AlternateMobile   string
	Address           string
	Emirate           string
	POBox             string
	PreferredLanguage string
	PaymentMethods    []PaymentMethod
	KYCVerified       bool
	CreatedAt         time.Time
	LastUpdated       time.Time
}

// DisplayName returns the name of whichever variant is populated.
func (c *Customer) DisplayName() string {
	if c.CustomerType == CustomerCorporate {
		return c.CompanyName
	}
	return c.FullName
}

// ClearInactiveVariant blanks the field group not selected by CustomerType,
// so a type switch on replace cannot leave stale variant fields behind.
func (c *Customer) ClearInactiveVariant() {
	switch c.CustomerType {
	case CustomerIndividual:
		c.CompanyName = ""
		c.TradeLicense = ""
		c.TRNNumber = ""
	case CustomerCorporate:
		c.FullName = ""
		c.EmiratesID = ""
		c.PassportNumber = ""
		c.Nationality = ""
		c.DOB = ""
		c.Gender = ""
	}
}
