// Package dedup suppresses duplicate posting-created events so a create
// followed by a status-change does not fan out twice within the guard
// window.
package dedup

import (
	"context"
	"time"

	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const eventKeyPrefix = "alerts:event:posting:"

type RedisEventGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisEventGuard(rdb *redis.Client, ttl time.Duration) usecase.EventGuard {
	return &RedisEventGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisEventGuard) FirstSeen(ctx context.Context, postingID uuid.UUID) (bool, error) {
	ok, err := g.rdb.SetNX(ctx, eventKeyPrefix+postingID.String(), 1, g.ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "event guard unavailable")
	}
	return ok, nil
}
