package dto

type ExpenseResponse struct {
	ID        int64   `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	UserID    int64   `json:"user_id"`
	CreatedAt string  `json:"created_at"`
}

// ExpenseListResponse carries one page of expenses while Total and
// GrandTotal describe the full filtered set, not just the page.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Total      int64             `json:"total"`
	GrandTotal float64           `json:"grand_total"`
}
