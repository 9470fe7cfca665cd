package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rkeng/billing-api/internal/application/dto"
	"github.com/rkeng/billing-api/internal/application/usecase"
	"github.com/rkeng/billing-api/internal/domain"
)

// FactoryHandler handles the factory CRUD routes.
type FactoryHandler struct {
	uc *usecase.FactoryUseCase
}

func NewFactoryHandler(uc *usecase.FactoryUseCase) *FactoryHandler {
	return &FactoryHandler{uc: uc}
}

// Create godoc
// @Summary      Create a factory for the authenticated user
// @Tags         factories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFactoryRequest  true  "name, address"
// @Success      201   {object}  dto.FactoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /factories [post]
func (h *FactoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFactoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factory name is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the authenticated user's factories
// @Tags         factories
// @Produce      json
// @Success      200  {array}  dto.FactoryResponse
// @Security     BearerAuth
// @Router       /factories [get]
func (h *FactoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForOwner(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a factory owned by the authenticated user
// @Tags         factories
// @Produce      json
// @Param        factory_id  path  string  true  "factory id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /factories/{factory_id} [delete]
func (h *FactoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("factory_id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factory not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Factory deleted successfully"})
}
