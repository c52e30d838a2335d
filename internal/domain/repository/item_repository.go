package repository

import "github.com/gulfwms/wms-api/internal/domain/entity"

// ItemRepository persistence port for InventoryItem. List search covers
// name/sku/barcode/warehouseName.
type ItemRepository interface {
	Create(i *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	List(search string) ([]*entity.InventoryItem, error)
	Replace(i *entity.InventoryItem) error
	Delete(id string) error
}
