// Package entity defines the domain entities for the expense feature.
package entity

// Expense is a single spending record.
// Every field except ID is stored exactly as the client sent it; nil means NULL.
type Expense struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"` // free-form, never parsed
	Category    *string `json:"category"`
	UserID      *uint   `json:"user_id"` // owning user, may be nil
}
