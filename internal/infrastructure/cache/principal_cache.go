package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

func principalKey(id string) string {
	return "principal:" + id
}

// PrincipalCache is a Redis read-through cache for resolved principals.
// Entries never contain the password hash.
type PrincipalCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPrincipalCache(rdb *redis.Client, ttl time.Duration) *PrincipalCache {
	return &PrincipalCache{rdb: rdb, ttl: ttl}
}

func (c *PrincipalCache) Get(ctx context.Context, id string) (*entity.User, bool, error) {
	var u entity.User
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, principalKey(id), &u)
	if err != nil || !ok {
		return nil, false, err
	}
	return &u, true, nil
}

func (c *PrincipalCache) Set(ctx context.Context, u *entity.User) error {
	return helpers.RedisSetJSON(ctx, c.rdb, principalKey(u.ID), u.Public(), c.ttl)
}
