package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Barcode types. An outer_box item carries a second barcode for the box.
const (
	BarcodeSingle   = "single"
	BarcodeOuterBox = "outer_box"
)

// Categories accepted for inventory items.
var Categories = []string{
	"Electronics", "Clothing", "Groceries", "Pharmaceuticals",
	"Stationery", "Hardware", "Toys", "Home Appliances",
}

// Units of measure.
var Units = []string{"pcs", "kg", "g", "L", "mL", "m", "cm", "box", "pack"}

// InventoryItem is a stocked SKU. WarehouseName/Location and SupplierName are
// write-time copies of the referenced records; the ids are the source of truth.
type InventoryItem struct {
	ID              string
	SKU             string
	Name            string
	Description     string
	Category        string
	Barcode         string
	BarcodeType     string
	BarcodeOuterBox string
	UnitOfMeasure   string
	CostPrice       decimal.Decimal
	SellingPrice    decimal.Decimal
	TaxRate         decimal.Decimal
	CurrentStock    int
	MinStockLevel   int
	SupplierID      string
	SupplierName    string
	WarehouseID     string
	WarehouseName   string
	Location        string
	CreatedAt       time.Time
	LastUpdated     time.Time
}

// LowStock reports whether the item sits below its minimum stock level.
func (i *InventoryItem) LowStock() bool {
	return i.CurrentStock < i.MinStockLevel
}
