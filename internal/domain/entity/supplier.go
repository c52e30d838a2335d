package entity

import "time"

// Supplier represents a goods supplier. tradeLicense and trnNumber are
// unique across suppliers (enforced by the store).
type Supplier struct {
	ID                string
	Name              string
	ContactPerson     string
	Email             string
	Phone             string
	Address           string
	TradeLicense      string
	TRNNumber         string
	Jurisdiction      string
	EstablishmentYear string
	BankDetails       string
	CreatedAt         time.Time
	LastUpdated       time.Time
}
