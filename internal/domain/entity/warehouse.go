package entity

import "time"

// Warehouse types.
var WarehouseTypes = []string{"Main", "Regional", "Cold Storage", "Temporary"}

// Warehouse statuses.
var WarehouseStatuses = []string{"Active", "Inactive", "Under Maintenance"}

// Warehouse represents a storage facility.
// UsedCapacity is server-derived: zero at creation and preserved verbatim on
// replace; inventory operations do not adjust it.
type Warehouse struct {
	ID            string
	Code          string
	Name          string
	Location      string
	Address       string
	ContactPerson string
	ContactNumber string
	TotalCapacity float64
	UsedCapacity  float64
	Type          string
	Status        string
	CreatedAt     time.Time
	LastUpdated   time.Time
}
