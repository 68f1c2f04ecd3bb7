// Package usecase implements the business logic for the expense feature.
package usecase

import (
	"context"

	"budget_backend/internal/feature/expense/domain/entity"
)

// ExpenseRepository abstracts the persistence layer for expenses.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	List(ctx context.Context) ([]entity.Expense, error)
	// FindByID returns ErrExpenseNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.Expense, error)
	// Update replaces every field of the row with e.ID and reports matched rows.
	Update(ctx context.Context, e *entity.Expense) (int64, error)
	// Delete returns ErrExpenseNotFound when no row was removed.
	Delete(ctx context.Context, id uint) error
}

// ExpenseUsecase provides the expense operations exposed over HTTP.
type ExpenseUsecase struct {
	repo ExpenseRepository
}

// NewExpenseUsecase creates an ExpenseUsecase with the given repository.
func NewExpenseUsecase(r ExpenseRepository) *ExpenseUsecase {
	return &ExpenseUsecase{repo: r}
}

// Create persists e as received and fills in its ID.
func (u *ExpenseUsecase) Create(ctx context.Context, e *entity.Expense) error {
	e.ID = 0
	return u.repo.Create(ctx, e)
}

// List returns every expense, unfiltered.
func (u *ExpenseUsecase) List(ctx context.Context) ([]entity.Expense, error) {
	return u.repo.List(ctx)
}

// Get returns the full expense record or ErrExpenseNotFound.
func (u *ExpenseUsecase) Get(ctx context.Context, id uint) (*entity.Expense, error) {
	return u.repo.FindByID(ctx, id)
}

// Update replaces all fields of expense id with e. The returned bool reports
// whether a row matched; an unknown id is not an error.
func (u *ExpenseUsecase) Update(ctx context.Context, id uint, e *entity.Expense) (bool, error) {
	e.ID = id
	n, err := u.repo.Update(ctx, e)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes expense id or returns ErrExpenseNotFound.
func (u *ExpenseUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
