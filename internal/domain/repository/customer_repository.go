package repository

import (
	"time"

	"github.com/gulfwms/wms-api/internal/domain/entity"
)

// CustomerStats aggregate counts for the dashboard.
type CustomerStats struct {
	Total     int
	ByType    map[string]int
	ByEmirate map[string]int
	KYC       map[bool]int
	Recent    []RecentCustomer
}

// RecentCustomer one row of the most-recently-created listing.
type RecentCustomer struct {
	ID           string
	Name         string
	CustomerType string
	CreatedAt    time.Time
}

// CustomerRepository persistence port for Customer.
// List with a non-empty search filters case-insensitively over
// fullName/companyName/emiratesId/tradeLicense/trnNumber/email/mobile and
// always orders newest-created first. GetByID returns (nil, nil) when the id
// is unknown; Replace and Delete return domain.ErrNotFound instead.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(search string) ([]*entity.Customer, error)
	Replace(c *entity.Customer) error
	Delete(id string) error
	Stats() (*CustomerStats, error)
}
