package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"spendscan/internal/dto"
	"spendscan/internal/models"
	"spendscan/internal/storage"

	"go.uber.org/zap"
)

// ErrUnparsableReply means the classifier's reply was not valid JSON.
// Nothing is persisted in that case.
var ErrUnparsableReply = errors.New("classifier reply is not valid JSON")

const amountNotFound = "Total amount not found"

// ReceiptService owns the receipt lifecycle: staging an upload in the
// single-slot store and running the extraction pipeline over it.
type ReceiptService struct {
	store      storage.ReceiptStore
	recognizer TextRecognizer
	classifier ReceiptClassifier
	expenses   ExpenseRepository
	logger     *zap.Logger
}

func NewReceiptService(
	store storage.ReceiptStore,
	recognizer TextRecognizer,
	classifier ReceiptClassifier,
	expenses ExpenseRepository,
	logger *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		store:      store,
		recognizer: recognizer,
		classifier: classifier,
		expenses:   expenses,
		logger:     logger,
	}
}

// Upload stages a receipt, replacing any previously pending one.
func (s *ReceiptService) Upload(ctx context.Context, fileName string, r io.Reader) error {
	return s.store.Put(ctx, fileName, r)
}

// Process runs OCR and classification over the pending receipt and records
// the resulting expense for the user. At most one file is processed per
// call, mirroring the single-slot upload contract; with an empty slot it
// returns (nil, nil) and writes nothing.
func (s *ReceiptService) Process(ctx context.Context, userID int64) (*dto.ExtractionResult, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		img, err := s.store.Get(ctx, name)
		if err != nil {
			return nil, err
		}

		fragments, err := s.recognizer.Recognize(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("failed to recognize receipt text: %w", err)
		}

		lines := make([]string, 0, len(fragments))
		for _, fragment := range fragments {
			lines = append(lines, fragment.Text)
		}
		blob := strings.Join(lines, "\n")

		reply, err := s.classifier.Classify(ctx, blob)
		if err != nil {
			return nil, fmt.Errorf("failed to classify receipt: %w", err)
		}

		result, err := parseReply(reply)
		if err != nil {
			return nil, err
		}

		expense := &models.Expense{
			Category:  models.Category(result.Category),
			Amount:    resolveAmount(result.TotalAmount),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.expenses.Create(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to record expense: %w", err)
		}

		s.logger.Info("Receipt processed",
			zap.String("file", name),
			zap.Int64("user_id", userID),
			zap.String("category", result.Category),
			zap.Float64("amount", expense.Amount),
		)

		return result, nil
	}

	return nil, nil
}

// parseReply decodes the classifier's reply strictly: either it is the
// expected JSON object (possibly wrapped in markdown fences) or the whole
// request fails.
func parseReply(raw string) (*dto.ExtractionResult, error) {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var result dto.ExtractionResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnparsableReply, raw)
	}

	if result.Category == "" {
		result.Category = string(models.CategoryNotFound)
	}

	return &result, nil
}

// resolveAmount coerces the model's total_amount into a stored amount: a
// non-negative number or numeric string is taken as-is, anything else
// (including the not-found sentinel) becomes 0.
func resolveAmount(v any) float64 {
	switch amount := v.(type) {
	case float64:
		if amount >= 0 {
			return amount
		}
	case string:
		if amount == amountNotFound {
			return 0
		}
		if parsed, err := strconv.ParseFloat(amount, 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return 0
}
