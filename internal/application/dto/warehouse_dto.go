package dto

import "time"

// WarehouseRequest input for creating or replacing a warehouse.
// usedCapacity is intentionally absent: it is server-derived.
type WarehouseRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Address       string  `json:"address"`
	ContactPerson string  `json:"contactPerson"`
	ContactNumber string  `json:"contactNumber"`
	TotalCapacity float64 `json:"totalCapacity"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
}

// WarehouseResponse output for a warehouse record.
type WarehouseResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contactPerson"`
	ContactNumber string    `json:"contactNumber"`
	TotalCapacity float64   `json:"totalCapacity"`
	UsedCapacity  float64   `json:"usedCapacity"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
