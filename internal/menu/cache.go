package menu

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "menu:"

// CachedRepo is a cache-aside wrapper over a Repository. The catalog is
// read-mostly, so reads go through Redis and every mutation drops the
// whole prefix. A nil client turns the wrapper into a pass-through.
type CachedRepo struct {
	inner Repository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedRepo(inner Repository, rdb *redis.Client, ttl time.Duration) *CachedRepo {
	return &CachedRepo{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedRepo) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	key := cachePrefix + "item:" + id
	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
			var m MenuItem
			if json.Unmarshal(b, &m) == nil {
				return &m, nil
			}
		}
	}
	m, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, m)
	return m, nil
}

func (c *CachedRepo) List(ctx context.Context, q Query) ([]MenuItem, error) {
	key := cachePrefix + "list:" + q.Category
	if q.Popular {
		key += ":popular"
	}
	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
			var out []MenuItem
			if json.Unmarshal(b, &out) == nil {
				return out, nil
			}
		}
	}
	out, err := c.inner.List(ctx, q)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

func (c *CachedRepo) Create(ctx context.Context, m *MenuItem) error {
	if err := c.inner.Create(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepo) Update(ctx context.Context, m *MenuItem, updatePrice bool) error {
	if err := c.inner.Update(ctx, m, updatePrice); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepo) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := c.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		c.invalidate(ctx)
	}
	return ok, nil
}

func (c *CachedRepo) set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

func (c *CachedRepo) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, cachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[cache] del %s: %v", iter.Val(), err)
			return
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[cache] scan: %v", err)
	}
}
