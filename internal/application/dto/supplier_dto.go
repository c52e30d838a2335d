package dto

import "time"

// SupplierRequest input for creating or replacing a supplier. All fields are
// required; values are trimmed before validation.
type SupplierRequest struct {
	Name              string `json:"name"`
	ContactPerson     string `json:"contactPerson"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	TradeLicense      string `json:"tradeLicense"`
	TRNNumber         string `json:"trnNumber"`
	Jurisdiction      string `json:"jurisdiction"`
	EstablishmentYear string `json:"establishmentYear"`
	BankDetails       string `json:"bankDetails"`
}

// SupplierResponse output for a supplier record.
type SupplierResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ContactPerson     string    `json:"contactPerson"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	TradeLicense      string    `json:"tradeLicense"`
	TRNNumber         string    `json:"trnNumber"`
	Jurisdiction      string    `json:"jurisdiction"`
	EstablishmentYear string    `json:"establishmentYear"`
	BankDetails       string    `json:"bankDetails"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdated       time.Time `json:"lastUpdated"`
}
