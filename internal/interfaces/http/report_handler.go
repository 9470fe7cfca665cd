package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/application/reports"
	"github.com/rkeng/billing-api/internal/domain"
)

// ReportHandler handles the monthly report route.
type ReportHandler struct {
	uc *reports.MonthlyReportUseCase
}

func NewReportHandler(uc *reports.MonthlyReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Monthly billed total for a factory
// @Tags         reports
// @Produce      json
// @Param        factory_id  path   string  true  "factory id"
// @Param        year        query  int     true  "calendar year"
// @Param        month       query  int     true  "month 1-12"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reports/monthly/{factory_id} [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	out, err := h.uc.MonthlyTotal(c.Context(), GetUserID(c), c.Params("factory_id"), year, month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year and month query params are required, month must be 1-12"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factory not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
