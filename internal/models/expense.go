package models

import "time"

// Expense is a single expense record. Date is a calendar date in
// "YYYY-MM-DD" form; there is no time component.
type Expense struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	CategoryID  int     `json:"category_id"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	IsDeleted   bool    `json:"is_deleted"`
}

// ExpenseDetail is an expense joined with its category's image URL.
// List and create responses use this shape; the soft-delete response
// returns the bare Expense.
type ExpenseDetail struct {
	Expense
	CategoryImageURL string `json:"category_image_url"`
}

// SpendingSummary is an aggregate snapshot over all expense rows.
type SpendingSummary struct {
	ActiveCount  int       `json:"active_count"`
	DeletedCount int       `json:"deleted_count"`
	TotalAmount  float64   `json:"total_amount"` // active expenses only
	GeneratedAt  time.Time `json:"generated_at"`
}
