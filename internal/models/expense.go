package models

import "time"

type Category string

const (
	CategoryGroceries     Category = "Groceries"
	CategoryDining        Category = "Dining"
	CategoryGas           Category = "Gas"
	CategoryPharmacy      Category = "Pharmacy"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryOther         Category = "Other"

	// CategoryNotFound is the classifier's sentinel for a receipt it could
	// not place in any category. Stored verbatim, like any other value.
	CategoryNotFound Category = "Category not found"
)

type Expense struct {
	ID        int64     `db:"id"`
	Category  Category  `db:"category"`
	Amount    float64   `db:"amount"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
