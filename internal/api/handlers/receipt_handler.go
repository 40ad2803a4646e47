package handlers

import (
	"context"
	"io"

	"spendscan/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReceiptService interface {
	Upload(ctx context.Context, fileName string, r io.Reader) error
	Process(ctx context.Context, userID int64) (*dto.ExtractionResult, error)
}

type ReceiptHandler struct {
	receiptService ReceiptService
	logger         *zap.Logger
}

func NewReceiptHandler(receiptService ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Upload godoc
// @Summary Upload a receipt image
// @Description Stage a receipt for processing, replacing any pending one
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /receipt [post]
func (h *ReceiptHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	if err := h.receiptService.Upload(c.Context(), file.Filename, src); err != nil {
		h.logger.Error("Failed to store receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store receipt",
		})
	}

	return c.JSON(dto.MessageResponse{
		Message: "Receipt uploaded successfully",
	})
}

// Process godoc
// @Summary Process the pending receipt
// @Description OCR the pending receipt, classify it, and record an expense
// @Tags receipts
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.ExtractionResult
// @Failure 500 {object} map[string]string
// @Router /process-receipt/{user_id} [post]
func (h *ReceiptHandler) Process(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	result, err := h.receiptService.Process(c.Context(), int64(userID))
	if err != nil {
		h.logger.Error("Failed to process receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process receipt",
		})
	}

	// An empty slot yields a JSON null body, matching the contract that
	// processing with nothing pending returns no result.
	return c.JSON(result)
}
