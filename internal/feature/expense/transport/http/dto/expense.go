// Package dto defines data transfer objects for the expense HTTP API.
package dto

import "budget_backend/internal/feature/expense/domain/entity"

// ExpenseReq is the body of POST /api/expenses and PUT /api/expenses/:id.
// Values are passed through without validation.
type ExpenseReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	UserID      *uint   `json:"user_id"`
}

// IsEmpty reports whether none of the known fields were sent.
func (r ExpenseReq) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Amount == nil &&
		r.Date == nil && r.Category == nil && r.UserID == nil
}

// ToEntity converts the request into a (not yet persisted) expense.
func (r ExpenseReq) ToEntity() *entity.Expense {
	return &entity.Expense{
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Category:    r.Category,
		UserID:      r.UserID,
	}
}

// ExpenseItem is the full expense record returned to clients.
type ExpenseItem struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	UserID      *uint   `json:"user_id"`
}

// NewExpenseItem builds the response view of e.
func NewExpenseItem(e *entity.Expense) ExpenseItem {
	return ExpenseItem{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
		UserID:      e.UserID,
	}
}
