package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"budget_backend/internal/platform/config"
)

func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rdb, err := NewRedisClient(ctx, config.RedisConfig{Host: "127.0.0.1", Port: "1"})

	assert.Error(t, err)
	assert.Nil(t, rdb)
}
