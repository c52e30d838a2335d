package validate

import (
	"github.com/shopspring/decimal"

	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
)

// Item validates an inventory item. The barcodeType discriminator is resolved
// first: barcodeOuterBox is required iff barcodeType is outer_box. The
// warehouse reference is always required.
func Item(i *entity.InventoryItem) error {
	switch i.BarcodeType {
	case entity.BarcodeSingle:
		// no extra fields
	case entity.BarcodeOuterBox:
		if i.BarcodeOuterBox == "" {
			return domain.Invalid("barcodeOuterBox", "Outer box barcode is required for this type")
		}
	default:
		return domain.Invalid("barcodeType", "barcodeType must be single or outer_box")
	}

	if err := requireAll([]field{
		{"sku", i.SKU},
		{"name", i.Name},
		{"category", i.Category},
		{"barcode", i.Barcode},
		{"unitOfMeasure", i.UnitOfMeasure},
		{"warehouseId", i.WarehouseID},
	}); err != nil {
		return err
	}
	if !oneOf(i.Category, entity.Categories) {
		return domain.Invalid("category", i.Category+" is not a valid category")
	}
	if !oneOf(i.UnitOfMeasure, entity.Units) {
		return domain.Invalid("unitOfMeasure", i.UnitOfMeasure+" is not a valid unit of measure")
	}
	if i.CostPrice.LessThan(decimal.Zero) {
		return domain.Invalid("costPrice", "costPrice must be zero or positive")
	}
	if i.SellingPrice.LessThan(decimal.Zero) {
		return domain.Invalid("sellingPrice", "sellingPrice must be zero or positive")
	}
	if i.TaxRate.LessThan(decimal.Zero) {
		return domain.Invalid("taxRate", "taxRate must be zero or positive")
	}
	if i.CurrentStock < 0 {
		return domain.Invalid("currentStock", "currentStock must be zero or positive")
	}
	if i.MinStockLevel < 0 {
		return domain.Invalid("minStockLevel", "minStockLevel must be zero or positive")
	}
	return nil
}
