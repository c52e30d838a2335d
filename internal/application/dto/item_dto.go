package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest input for creating or replacing an inventory item.
// warehouseName/location and supplierName are not accepted from the client;
// they are resolved from the referenced records at write time.
type ItemRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Barcode         string          `json:"barcode"`
	BarcodeType     string          `json:"barcodeType"`
	BarcodeOuterBox string          `json:"barcodeOuterBox"`
	UnitOfMeasure   string          `json:"unitOfMeasure"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	CurrentStock    int             `json:"currentStock"`
	MinStockLevel   int             `json:"minStockLevel"`
	SupplierID      string          `json:"supplierId"`
	WarehouseID     string          `json:"warehouseId"`
}

// ItemResponse output for an inventory item.
type ItemResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	Barcode         string          `json:"barcode"`
	BarcodeType     string          `json:"barcodeType"`
	BarcodeOuterBox string          `json:"barcodeOuterBox,omitempty"`
	UnitOfMeasure   string          `json:"unitOfMeasure"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	CurrentStock    int             `json:"currentStock"`
	MinStockLevel   int             `json:"minStockLevel"`
	LowStock        bool            `json:"lowStock"`
	SupplierID      string          `json:"supplierId,omitempty"`
	SupplierName    string          `json:"supplierName,omitempty"`
	WarehouseID     string          `json:"warehouseId"`
	WarehouseName   string          `json:"warehouseName"`
	Location        string          `json:"location,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}
