package dto

import (
	"time"

	"github.com/gulfwms/wms-api/internal/domain/entity"
)

// CustomerRequest input for creating or fully replacing a customer. The same
// shape serves POST and PUT: every update is a full-record replace.
type CustomerRequest struct {
	CustomerType string `json:"customerType"`

	// Individual
	FullName       string `json:"fullName"`
	EmiratesID     string `json:"emiratesId"`
	PassportNumber string `json:"passportNumber"`
	Nationality    string `json:"nationality"`
	DOB            string `json:"dob"`
	Gender         string `json:"gender"`

	// Corporate
	CompanyName  string `json:"companyName"`
	TradeLicense string `json:"tradeLicense"`
	TRNNumber    string `json:"trnNumber"`

	// Common
	Email             string                 `json:"email"`
	Mobile            string                 `json:"mobile"`
	AlternateMobile   string                 `json:"alternateMobile"`
	Address           string                 `json:"address"`
	Emirate           string                 `json:"emirate"`
	POBox             string                 `json:"poBox"`
	PreferredLanguage string                 `json:"preferredLanguage"`
	PaymentMethods    []entity.PaymentMethod `json:"paymentMethods"`
	KYCVerified       bool                   `json:"kycVerified"`
}

// CustomerResponse output for a customer record.
type CustomerResponse struct {
	ID                string                 `json:"id"`
	CustomerType      string                 `json:"customerType"`
	FullName          string                 `json:"fullName,omitempty"`
	EmiratesID        string                 `json:"emiratesId,omitempty"`
	PassportNumber    string                 `json:"passportNumber,omitempty"`
	Nationality       string                 `json:"nationality,omitempty"`
	DOB               string                 `json:"dob,omitempty"`
	Gender            string                 `json:"gender,omitempty"`
	CompanyName       string                 `json:"companyName,omitempty"`
	TradeLicense      string                 `json:"tradeLicense,omitempty"`
	TRNNumber         string                 `json:"trnNumber,omitempty"`
	Email             string                 `json:"email"`
	Mobile            string                 `json:"mobile"`
	AlternateMobile   string                 `json:"alternateMobile,omitempty"`
	Address           string                 `json:"address"`
	Emirate           string                 `json:"emirate"`
	POBox             string                 `json:"poBox,omitempty"`
	PreferredLanguage string                 `json:"preferredLanguage"`
	PaymentMethods    []entity.PaymentMethod `json:"paymentMethods"`
	KYCVerified       bool                   `json:"kycVerified"`
	CreatedAt         time.Time              `json:"createdAt"`
	LastUpdated       time.Time              `json:"lastUpdated"`
}

// CustomerStatsResponse aggregate dashboard counts.
type CustomerStatsResponse struct {
	Total     int                      `json:"total"`
	ByType    map[string]int           `json:"byType"`
	ByEmirate map[string]int           `json:"byEmirate"`
	KYC       KYCStats                 `json:"kyc"`
	Recent    []RecentCustomerResponse `json:"recent"`
}

// KYCStats verified vs pending split.
type KYCStats struct {
	Verified int `json:"verified"`
	Pending  int `json:"pending"`
}

// RecentCustomerResponse one of the five most recently created customers.
type RecentCustomerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CustomerType string    `json:"customerType"`
	CreatedAt    time.Time `json:"createdAt"`
}
