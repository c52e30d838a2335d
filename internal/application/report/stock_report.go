package report

import (
	"fmt"
	"time"

	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
)

// StockPDFGenerator renders the stock report document.
type StockPDFGenerator interface {
	GenerateStockReport(generatedAt time.Time, items []*entity.InventoryItem) ([]byte, error)
}

// StockReportUseCase produces a PDF snapshot of the whole inventory with
// below-minimum rows flagged. The flag mirrors the client's visual low-stock
// marker and involves no store-side validation.
type StockReportUseCase struct {
	itemRepo repository.ItemRepository
	pdf      StockPDFGenerator
}

// NewStockReportUseCase builds the use case.
func NewStockReportUseCase(itemRepo repository.ItemRepository, pdf StockPDFGenerator) *StockReportUseCase {
	return &StockReportUseCase{itemRepo: itemRepo, pdf: pdf}
}

// Generate fetches every item and renders the report.
func (uc *StockReportUseCase) Generate() ([]byte, error) {
	items, err := uc.itemRepo.List("")
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return uc.pdf.GenerateStockReport(time.Now(), items)
}
