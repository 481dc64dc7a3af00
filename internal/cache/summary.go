package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fintrack/internal/services"
)

const summaryPrefix = "fintrack:summary:"

// SummaryCache stores summaries under a per-owner version. Any record change
// bumps the owner's version, which orphans every entry computed before it;
// orphans expire with their TTL.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSummaryCache returns a cache whose entries live for ttl.
func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func versionKey(ownerID string) string {
	return summaryPrefix + "ver:" + ownerID
}

func entryKey(ownerID string, version int64, key string) string {
	return fmt.Sprintf("%s%s:%d:%s", summaryPrefix, ownerID, version, key)
}

func (c *SummaryCache) version(ctx context.Context, ownerID string) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Get implements services.SummaryCacher.
func (c *SummaryCache) Get(ctx context.Context, ownerID, key string) (*services.Summary, int64, error) {
	version, err := c.version(ctx, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("read summary version: %w", err)
	}

	raw, err := c.rdb.Get(ctx, entryKey(ownerID, version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read summary: %w", err)
	}

	var summary services.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// Undecodable entries are treated as a miss and overwritten.
		return nil, version, nil
	}
	return &summary, version, nil
}

// Set implements services.SummaryCacher.
func (c *SummaryCache) Set(ctx context.Context, ownerID, key string, version int64, summary *services.Summary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := c.rdb.Set(ctx, entryKey(ownerID, version, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Notify implements services.ChangeNotifier by invalidating the owner's summaries.
func (c *SummaryCache) Notify(ctx context.Context, change services.RecordChange) error {
	if err := c.rdb.Incr(ctx, versionKey(change.OwnerID)).Err(); err != nil {
		return fmt.Errorf("bump summary version: %w", err)
	}
	return nil
}
