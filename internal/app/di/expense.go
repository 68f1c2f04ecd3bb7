// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	expenseadapters "budget_backend/internal/feature/expense/adapters"
	"budget_backend/internal/feature/expense/usecase"
	"budget_backend/internal/platform/cache"
)

// NewExpenseRepository creates an ExpenseRepository implementation.
// If Redis is available, the gorm repository is wrapped with a read-through cache.
// Otherwise, the gorm repository is used directly.
func NewExpenseRepository(rdb *redis.Client, ttl time.Duration, db *gorm.DB) usecase.ExpenseRepository {
	repo := expenseadapters.NewExpenseRepository(db)
	if rdb != nil {
		return cache.NewCachingExpenseRepository(rdb, ttl, repo, "expenses")
	}
	return repo
}
