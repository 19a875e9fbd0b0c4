package redis

import (
	"context"
	"fmt"

	"agentMarket/business/deals"

	"github.com/redis/go-redis/v9"
)

type FlagRepository struct {
	client *redis.Client
}

var _ deals.FlagRepository = (*FlagRepository)(nil)

func NewFlagRepository(client *redis.Client) *FlagRepository {
	return &FlagRepository{
		client: client,
	}
}

// IsEnabled reports whether a merchandising surface is switched on. A missing
// key counts as enabled, so the flag acts as a kill switch rather than an
// allow list.
func (r *FlagRepository) IsEnabled(ctx context.Context, surface string) (bool, error) {
	key := fmt.Sprintf("flag:surface:%s", surface)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return false, fmt.Errorf("failed to read surface flag: %w", err)
	}

	return val != "0" && val != "false", nil
}

func (r *FlagRepository) SetEnabled(ctx context.Context, surface string, enabled bool) error {
	key := fmt.Sprintf("flag:surface:%s", surface)

	val := "1"
	if !enabled {
		val = "0"
	}

	if err := r.client.Set(ctx, key, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set surface flag: %w", err)
	}

	return nil
}
