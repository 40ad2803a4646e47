package repository

import (
	"context"

	"spendscan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("category", "amount", "user_id", "created_at").
		Values(expense.Category, expense.Amount, expense.UserID, expense.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&expense.ID)
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID int64, limit, offset uint64) ([]models.Expense, int64, float64, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID}, limit, offset)
}

func (r *ExpenseRepository) ListByUserAndCategory(ctx context.Context, userID int64, category string, limit, offset uint64) ([]models.Expense, int64, float64, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID, "category": category}, limit, offset)
}

// list returns one page ordered by created_at descending, plus the row
// count and amount sum over the whole filtered set.
func (r *ExpenseRepository) list(ctx context.Context, filter squirrel.Eq, limit, offset uint64) ([]models.Expense, int64, float64, error) {
	query := squirrel.Select("id", "category", "amount", "user_id", "created_at").
		From("expenses").
		Where(filter).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.UserID, &e.CreatedAt); err != nil {
			return nil, 0, 0, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	total, err := r.count(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	grandTotal, err := r.sum(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	return expenses, total, grandTotal, nil
}

func (r *ExpenseRepository) count(ctx context.Context, filter squirrel.Eq) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("expenses").
		Where(filter).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&total)
	return total, err
}

func (r *ExpenseRepository) sum(ctx context.Context, filter squirrel.Eq) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("expenses").
		Where(filter).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var grandTotal float64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&grandTotal)
	return grandTotal, err
}
