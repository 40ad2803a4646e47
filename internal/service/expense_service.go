package service

import (
	"context"
	"time"

	"spendscan/internal/dto"
	"spendscan/internal/models"

	"go.uber.org/zap"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID int64, limit, offset uint64) ([]models.Expense, int64, float64, error)
	ListByUserAndCategory(ctx context.Context, userID int64, category string, limit, offset uint64) ([]models.Expense, int64, float64, error)
}

type ExpenseService struct {
	expenseRepo ExpenseRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) List(ctx context.Context, userID int64, limit, offset int) (*dto.ExpenseListResponse, error) {
	expenses, total, grandTotal, err := s.expenseRepo.ListByUser(ctx, userID, uint64(limit), uint64(offset))
	if err != nil {
		return nil, err
	}
	return buildListResponse(expenses, total, grandTotal), nil
}

func (s *ExpenseService) ListByCategory(ctx context.Context, userID int64, category string, limit, offset int) (*dto.ExpenseListResponse, error) {
	expenses, total, grandTotal, err := s.expenseRepo.ListByUserAndCategory(ctx, userID, category, uint64(limit), uint64(offset))
	if err != nil {
		return nil, err
	}
	return buildListResponse(expenses, total, grandTotal), nil
}

func buildListResponse(expenses []models.Expense, total int64, grandTotal float64) *dto.ExpenseListResponse {
	responses := make([]dto.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = dto.ExpenseResponse{
			ID:        e.ID,
			Category:  string(e.Category),
			Amount:    e.Amount,
			UserID:    e.UserID,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}

	return &dto.ExpenseListResponse{
		Expenses:   responses,
		Total:      total,
		GrandTotal: grandTotal,
	}
}
