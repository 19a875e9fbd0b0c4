package redis

import (
	"context"
	"fmt"
	"time"

	"agentMarket/business/deals"

	"github.com/redis/go-redis/v9"
)

type ImpressionStore struct {
	client *redis.Client
}

var _ deals.ImpressionStore = (*ImpressionStore)(nil)

func NewImpressionStore(client *redis.Client) *ImpressionStore {
	return &ImpressionStore{
		client: client,
	}
}

// MarkSeen records an impression dedup key and reports whether this was the
// first sighting. SETNX makes the check-and-set atomic across instances; the
// TTL bounds a display cycle.
func (s *ImpressionStore) MarkSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	first, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark impression seen: %w", err)
	}

	return first, nil
}
