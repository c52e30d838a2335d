package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gulfwms/wms-api/internal/application/dto"
	"github.com/gulfwms/wms-api/internal/application/report"
	"github.com/gulfwms/wms-api/internal/application/usecase"
)

// InventoryHandler handles inventory item endpoints (protected).
type InventoryHandler struct {
	uc     *usecase.ItemUseCase
	report *report.StockReportUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.ItemUseCase, reportUC *report.StockReportUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, report: reportUC}
}

// Create POST /api/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List GET /api/inventory?search=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return notFound(c, "Item not found")
	}
	return c.JSON(item)
}

// Delete DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Item removed"})
}

// Report GET /api/inventory/report
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate()
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("stock-report-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
