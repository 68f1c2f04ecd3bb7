// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"budget_backend/internal/feature/expense/domain/entity"
	"budget_backend/internal/feature/expense/usecase"
)

// CachingExpenseRepository decorates an ExpenseRepository with Redis
// read-through caching of List and FindByID. Any successful write drops every
// key in the namespace.
type CachingExpenseRepository struct {
	inner     usecase.ExpenseRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ExpenseRepository = (*CachingExpenseRepository)(nil)

// NewCachingExpenseRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "expenses".
func NewCachingExpenseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ExpenseRepository, namespace string) *CachingExpenseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "expenses"
	}
	return &CachingExpenseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts through the inner repository and invalidates the cache.
func (c *CachingExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	if err := c.inner.Create(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update replaces through the inner repository and invalidates the cache.
func (c *CachingExpenseRepository) Update(ctx context.Context, e *entity.Expense) (int64, error) {
	n, err := c.inner.Update(ctx, e)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		c.invalidate(ctx)
	}
	return n, nil
}

// Delete removes through the inner repository and invalidates the cache.
func (c *CachingExpenseRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// List checks the cache first, then falls back to the database.
func (c *CachingExpenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}
	key := c.listKey()

	var out []entity.Expense
	if c.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// FindByID checks the cache first, then falls back to the database.
// Misses for unknown IDs are not cached.
func (c *CachingExpenseRepository) FindByID(ctx context.Context, id uint) (*entity.Expense, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	key := c.itemKey(id)

	var cached entity.Expense
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}
	e, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, e)
	return e, nil
}

// get loads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingExpenseRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("cache get failed", "key", key, "error", err)
		}
		return false
	}
	if len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v under key (best effort).
func (c *CachingExpenseRepository) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
}

// invalidate drops every key in the namespace (best effort).
func (c *CachingExpenseRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("cache invalidation failed", "namespace", c.namespace, "error", err)
	}
}

func (c *CachingExpenseRepository) listKey() string {
	return c.namespace + ":all"
}

func (c *CachingExpenseRepository) itemKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingExpenseRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
