package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gulfwms/wms-api/internal/application/dto"
	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
	"github.com/gulfwms/wms-api/internal/domain/validate"
)

// ItemUseCase CRUD use cases for inventory items. The warehouse (and
// optional supplier) reference is resolved on every write and its name
// denormalized onto the item; the id stays the source of truth, so the copy
// can only go stale through a later rename.
type ItemUseCase struct {
	repo          repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(repo repository.ItemRepository, warehouseRepo repository.WarehouseRepository, supplierRepo repository.SupplierRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, warehouseRepo: warehouseRepo, supplierRepo: supplierRepo}
}

// Create validates, resolves references, and persists a new item.
func (uc *ItemUseCase) Create(in dto.ItemRequest) (*dto.ItemResponse, error) {
	now := time.Now()
	item := itemFromRequest(in)
	item.ID = uuid.New().String()
	item.CreatedAt = now
	item.LastUpdated = now
	if err := validate.Item(item); err != nil {
		return nil, err
	}
	if err := uc.resolveReferences(item); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update fully replaces an existing item, re-resolving references.
// Returns (nil, nil) for an unknown id.
func (uc *ItemUseCase) Update(id string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	item := itemFromRequest(in)
	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.LastUpdated = time.Now()
	if err := validate.Item(item); err != nil {
		return nil, err
	}
	if err := uc.resolveReferences(item); err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List returns items, optionally filtered by a free-text search.
func (uc *ItemUseCase) List(search string) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toItemResponse(i))
	}
	return out, nil
}

// Delete removes an item; domain.ErrNotFound passes through.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// resolveReferences fills WarehouseName/Location (and SupplierName) from the
// referenced records. An unknown reference is a validation failure, not a
// conflict: the record must exist at selection time.
func (uc *ItemUseCase) resolveReferences(item *entity.InventoryItem) error {
	warehouse, err := uc.warehouseRepo.GetByID(item.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.Invalid("warehouseId", "warehouse does not exist")
	}
	item.WarehouseName = warehouse.Name
	item.Location = warehouse.Location

	if item.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(item.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.Invalid("supplierId", "supplier does not exist")
		}
		item.SupplierName = supplier.Name
	}
	return nil
}

func itemFromRequest(in dto.ItemRequest) *entity.InventoryItem {
	item := &entity.InventoryItem{
		SKU:             in.SKU,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Barcode:         in.Barcode,
		BarcodeType:     in.BarcodeType,
		BarcodeOuterBox: in.BarcodeOuterBox,
		UnitOfMeasure:   in.UnitOfMeasure,
		CostPrice:       in.CostPrice,
		SellingPrice:    in.SellingPrice,
		TaxRate:         in.TaxRate,
		CurrentStock:    in.CurrentStock,
		MinStockLevel:   in.MinStockLevel,
		SupplierID:      in.SupplierID,
		WarehouseID:     in.WarehouseID,
	}
	if item.BarcodeType == "" {
		item.BarcodeType = entity.BarcodeSingle
	}
	if item.UnitOfMeasure == "" {
		item.UnitOfMeasure = "pcs"
	}
	if item.BarcodeType != entity.BarcodeOuterBox {
		item.BarcodeOuterBox = ""
	}
	return item
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              i.ID,
		SKU:             i.SKU,
		Name:            i.Name,
		Description:     i.Description,
		Category:        i.Category,
		Barcode:         i.Barcode,
		BarcodeType:     i.BarcodeType,
		BarcodeOuterBox: i.BarcodeOuterBox,
		UnitOfMeasure:   i.UnitOfMeasure,
		CostPrice:       i.CostPrice,
		SellingPrice:    i.SellingPrice,
		TaxRate:         i.TaxRate,
		CurrentStock:    i.CurrentStock,
		MinStockLevel:   i.MinStockLevel,
		LowStock:        i.LowStock(),
		SupplierID:      i.SupplierID,
		SupplierName:    i.SupplierName,
		WarehouseID:     i.WarehouseID,
		WarehouseName:   i.WarehouseName,
		Location:        i.Location,
		CreatedAt:       i.CreatedAt,
		LastUpdated:     i.LastUpdated,
	}
}
