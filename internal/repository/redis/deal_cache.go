package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agentMarket/business/deals"
	"agentMarket/domain"

	"github.com/redis/go-redis/v9"
)

type DealCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ deals.DealCache = (*DealCache)(nil)

func NewDealCache(client *redis.Client, ttl time.Duration) *DealCache {
	return &DealCache{
		client: client,
		ttl:    ttl,
	}
}

func dealCacheKey(placement string, limit int) string {
	return fmt.Sprintf("deals:top:%s:%d", placement, limit)
}

func (c *DealCache) GetDeals(ctx context.Context, placement string, limit int) ([]domain.ScoredDeal, bool, error) {
	val, err := c.client.Get(ctx, dealCacheKey(placement, limit)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read deal cache: %w", err)
	}

	var cached []domain.ScoredDeal
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached deals: %w", err)
	}

	return cached, true, nil
}

func (c *DealCache) SetDeals(ctx context.Context, placement string, limit int, deals []domain.ScoredDeal) error {
	jsonData, err := json.Marshal(deals)
	if err != nil {
		return fmt.Errorf("failed to marshal deals: %w", err)
	}

	if err := c.client.Set(ctx, dealCacheKey(placement, limit), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store deals in Redis: %w", err)
	}

	return nil
}
