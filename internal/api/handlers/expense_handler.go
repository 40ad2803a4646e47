package handlers

import (
	"context"

	"spendscan/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExpenseService interface {
	List(ctx context.Context, userID int64, limit, offset int) (*dto.ExpenseListResponse, error)
	ListByCategory(ctx context.Context, userID int64, category string, limit, offset int) (*dto.ExpenseListResponse, error)
}

type ExpenseHandler struct {
	expenseService ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// ListAll godoc
// @Summary List a user's expenses
// @Description Paginated expenses ordered by creation time, newest first
// @Tags expenses
// @Produce json
// @Param user_id path int true "User ID"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 422 {object} map[string]string
// @Router /all-expenses/{user_id} [get]
func (h *ExpenseHandler) ListAll(c *fiber.Ctx) error {
	userID, limit, offset, ok := listParams(c)
	if !ok {
		return nil
	}

	resp, err := h.expenseService.List(c.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list expenses",
		})
	}

	return c.JSON(resp)
}

// ListByCategory godoc
// @Summary List a user's expenses in one category
// @Description Same shape as all-expenses, filtered by exact category match
// @Tags expenses
// @Produce json
// @Param user_id path int true "User ID"
// @Param category query string true "Category"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 422 {object} map[string]string
// @Router /expenses-by-category/{user_id} [get]
func (h *ExpenseHandler) ListByCategory(c *fiber.Ctx) error {
	userID, limit, offset, ok := listParams(c)
	if !ok {
		return nil
	}

	category := c.Query("category")
	if category == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Category is required",
		})
	}

	resp, err := h.expenseService.ListByCategory(c.Context(), userID, category, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list expenses by category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list expenses",
		})
	}

	return c.JSON(resp)
}

// listParams validates the shared path and pagination parameters, writing
// the rejection response itself. Bad pagination is rejected before any
// store access.
func listParams(c *fiber.Ctx) (userID int64, limit, offset int, ok bool) {
	id, err := c.ParamsInt("user_id")
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
		return 0, 0, 0, false
	}

	limit = c.QueryInt("limit", 10)
	offset = c.QueryInt("offset", 0)
	if limit < 1 || offset < 0 {
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Invalid pagination parameters",
		})
		return 0, 0, 0, false
	}

	return int64(id), limit, offset, true
}
