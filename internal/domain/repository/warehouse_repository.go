package repository

import "github.com/gulfwms/wms-api/internal/domain/entity"

// WarehouseRepository persistence port for Warehouse. List search covers
// name/code/location.
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List(search string) ([]*entity.Warehouse, error)
	Replace(w *entity.Warehouse) error
	Delete(id string) error
}
