package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salonbook/internal/entities"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SlotCache memoizes slot queries by request key (employee, service, day).
// Each employee-day carries a version counter that every booking, shift or
// status mutation bumps, so a stale slot list is never served after a
// mutation even while the TTL is still running. A nil cache (redis not
// configured) turns every operation into a no-op.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SlotCache{rdb: rdb, ttl: ttl}
}

func (c *SlotCache) key(ctx context.Context, employeeID, serviceID int, day string) string {
	version, err := c.rdb.Get(ctx, versionKey(employeeID, day)).Int64()
	if err != nil && err != redis.Nil {
		logrus.Warnf("slot cache: version lookup failed: %v", err)
	}
	return fmt.Sprintf("slots:%d:%d:%s:v%d", employeeID, serviceID, day, version)
}

func versionKey(employeeID int, day string) string {
	return fmt.Sprintf("slotver:%d:%s", employeeID, day)
}

func (c *SlotCache) Get(ctx context.Context, employeeID, serviceID int, day string) ([]entities.SlotResponse, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, c.key(ctx, employeeID, serviceID, day)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.Warnf("slot cache: get failed: %v", err)
		}
		return nil, false
	}
	var slots []entities.SlotResponse
	if err := json.Unmarshal(payload, &slots); err != nil {
		logrus.Warnf("slot cache: corrupt entry dropped: %v", err)
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Put(ctx context.Context, employeeID, serviceID int, day string, slots []entities.SlotResponse) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, employeeID, serviceID, day), payload, c.ttl).Err(); err != nil {
		logrus.Warnf("slot cache: put failed: %v", err)
	}
}

// Invalidate bumps the employee-day version so every cached slot list for
// that employee and day becomes unreachable; the orphans expire via TTL.
func (c *SlotCache) Invalidate(ctx context.Context, employeeID int, day string) {
	if c == nil {
		return
	}
	key := versionKey(employeeID, day)
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		logrus.Warnf("slot cache: invalidate failed: %v", err)
		return
	}
	// keep the counter around long enough to outlive any cached list
	c.rdb.Expire(ctx, key, 24*time.Hour)
}
