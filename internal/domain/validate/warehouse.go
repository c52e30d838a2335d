package validate

import (
	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
)

// Warehouse validates a warehouse record. UsedCapacity is not checked here:
// it is server-derived and never part of the submitted payload.
func Warehouse(w *entity.Warehouse) error {
	if err := requireAll([]field{
		{"code", w.Code},
		{"name", w.Name},
		{"location", w.Location},
		{"address", w.Address},
		{"contactPerson", w.ContactPerson},
		{"contactNumber", w.ContactNumber},
	}); err != nil {
		return err
	}
	if w.TotalCapacity < 0 {
		return domain.Invalid("totalCapacity", "totalCapacity must be zero or positive")
	}
	if !oneOf(w.Type, entity.WarehouseTypes) {
		return domain.Invalid("type", w.Type+" is not a valid warehouse type")
	}
	if !oneOf(w.Status, entity.WarehouseStatuses) {
		return domain.Invalid("status", w.Status+" is not a valid warehouse status")
	}
	return nil
}
