package client

// Response shapes for the Copilot Money GraphQL API. Fields mirror the
// captured operation documents in internal/ops; everything beyond the ID is
// optional because the API frequently returns nulls.

// User is the authenticated account owner.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	IsOnboarded bool   `json:"isOnboarded"`
}

// Transaction is a single ledger entry.
type Transaction struct {
	ID          string  `json:"id"`
	Date        *string `json:"date"`
	Name        *string `json:"name"`
	Amount      *string `json:"amount"`
	Notes       *string `json:"notes"`
	IsReviewed  *bool   `json:"isReviewed"`
	IsPending   *bool   `json:"isPending"`
	CategoryID  *string `json:"categoryId"`
	RecurringID *string `json:"recurringId"`
	AccountID   *string `json:"accountId"`
	Tags        []Tag   `json:"tags"`
}

// Category is a spending category.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Group    *string `json:"group"`
	IsSystem bool    `json:"isSystem"`
}

// Tag is a user-defined transaction label.
type Tag struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// Recurring is a detected or user-created recurring payment.
type Recurring struct {
	ID         string  `json:"id"`
	Name       *string `json:"name"`
	Frequency  *string `json:"frequency"`
	Amount     *string `json:"amount"`
	CategoryID *string `json:"categoryId"`
	NextDate   *string `json:"nextDate"`
}

// BudgetMonth is one month of budget history.
type BudgetMonth struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}
