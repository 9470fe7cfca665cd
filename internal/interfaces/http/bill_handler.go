package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rkeng/billing-api/internal/application/billing"
	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/domain"
)

// BillHandler handles bill creation, listing, item replacement, PDF
// rendering and the WhatsApp share link.
type BillHandler struct {
	bills *billing.BillUseCase
	pdfs  *billing.PDFUseCase
}

func NewBillHandler(bills *billing.BillUseCase, pdfs *billing.PDFUseCase) *BillHandler {
	return &BillHandler{bills: bills, pdfs: pdfs}
}

func billError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Create a bill with its items
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBillRequest  true  "factory_id, gst settings, items"
// @Success      201   {object}  dto.BillSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /bills [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.bills.CreateBill(c.Context(), GetUserID(c), in)
	if err != nil {
		return billError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByFactory godoc
// @Summary      List bills of a factory with recomputed totals
// @Tags         bills
// @Produce      json
// @Param        factory_id  path  string  true  "factory id"
// @Success      200  {array}  dto.BillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{factory_id} [get]
func (h *BillHandler) ListByFactory(c *fiber.Ctx) error {
	out, err := h.bills.ListBills(GetUserID(c), c.Params("factory_id"))
	if err != nil {
		return billError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Replace all items of a bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill_id  path  string  true  "bill id"
// @Param        body     body  dto.UpdateBillRequest  true  "items"
// @Success      200  {object}  dto.UpdateBillResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{bill_id} [put]
func (h *BillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.bills.ReplaceItems(c.Context(), GetUserID(c), c.Params("bill_id"), in)
	if err != nil {
		return billError(c, err)
	}
	return c.JSON(out)
}

// GeneratePDF godoc
// @Summary      Render the bill as a PDF and return the file path
// @Tags         bills
// @Produce      json
// @Param        bill_id  path  string  true  "bill id"
// @Success      200  {object}  dto.BillPDFResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{bill_id}/pdf [get]
func (h *BillHandler) GeneratePDF(c *fiber.Ctx) error {
	path, err := h.pdfs.GenerateBillPDF(c.Context(), GetUserID(c), c.Params("bill_id"))
	if err != nil {
		return billError(c, err)
	}
	return c.JSON(dto.BillPDFResponse{Message: "PDF generated", FilePath: path})
}

// WhatsAppLink godoc
// @Summary      Build a wa.me share link for a bill
// @Tags         bills
// @Produce      json
// @Param        bill_id  path  string  true  "bill id"
// @Success      200  {object}  dto.WhatsAppLinkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{bill_id}/whatsapp [get]
func (h *BillHandler) WhatsAppLink(c *fiber.Ctx) error {
	out, err := h.bills.WhatsAppLink(GetUserID(c), c.Params("bill_id"))
	if err != nil {
		return billError(c, err)
	}
	return c.JSON(out)
}
