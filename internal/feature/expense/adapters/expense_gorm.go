// Package adapters provides the gorm-backed repository for the expense feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"budget_backend/internal/feature/expense/domain/entity"
	"budget_backend/internal/feature/expense/usecase"
	platformdb "budget_backend/internal/platform/db"
)

// expenseGorm implements usecase.ExpenseRepository on top of gorm.
type expenseGorm struct {
	db *gorm.DB
}

var _ usecase.ExpenseRepository = (*expenseGorm)(nil)

// NewExpenseRepository creates an expense repository using the given connection pool.
func NewExpenseRepository(db *gorm.DB) *expenseGorm {
	return &expenseGorm{db: db}
}

// Create inserts e and sets its ID.
func (r *expenseGorm) Create(ctx context.Context, e *entity.Expense) error {
	if e == nil {
		return platformdb.Classify(gorm.ErrInvalidData)
	}
	model := ExpenseModelFromEntity(e)
	if err := r.db.WithContext(ctx).Omit("User").Create(model).Error; err != nil {
		return platformdb.Classify(err)
	}
	e.ID = model.ID
	return nil
}

// List returns all expenses ordered by ID.
func (r *expenseGorm) List(ctx context.Context) ([]entity.Expense, error) {
	var models []ExpenseModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, platformdb.Classify(err)
	}
	out := make([]entity.Expense, 0, len(models))
	for i := range models {
		out = append(out, *models[i].ToEntity())
	}
	return out, nil
}

// FindByID returns usecase.ErrExpenseNotFound when no row matches.
func (r *expenseGorm) FindByID(ctx context.Context, id uint) (*entity.Expense, error) {
	var model ExpenseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrExpenseNotFound
		}
		return nil, platformdb.Classify(err)
	}
	return model.ToEntity(), nil
}

// Update overwrites all six data columns inside a transaction so the statement
// and its error are observed together.
func (r *expenseGorm) Update(ctx context.Context, e *entity.Expense) (int64, error) {
	values := ExpenseModelFromEntity(e)
	values.ID = 0

	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ExpenseModel{}).
			Where("id = ?", e.ID).
			Select(replaceColumns).
			Updates(values)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, platformdb.Classify(err)
	}
	return rows, nil
}

// Delete removes the expense with a single conditional statement.
func (r *expenseGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ExpenseModel{})
	if result.Error != nil {
		return platformdb.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return usecase.ErrExpenseNotFound
	}
	return nil
}
