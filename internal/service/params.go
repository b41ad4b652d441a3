package service

// LoginResult is what a successful login hands back to the HTTP layer.
type LoginResult struct {
	AccessToken string
	Name        string
}

// CategoryParams is the validated input for creating a category.
// Description and ImageURL are optional and default to "".
type CategoryParams struct {
	Name        string
	Description string
	ImageURL    string
}

// ExpenseParams is the validated input for creating an expense.
// Date must be a calendar date in "YYYY-MM-DD" form.
type ExpenseParams struct {
	Amount      float64
	CategoryID  int
	Description string
	Date        string
}
