package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisFavoritesSlot stores favorites payloads as plain Redis strings with no
// expiry, so they outlive both the session and the process.
type RedisFavoritesSlot struct {
	client redis.UniversalClient
}

func NewRedisFavoritesSlot(client redis.UniversalClient) *RedisFavoritesSlot {
	return &RedisFavoritesSlot{
		client: client,
	}
}

func (r *RedisFavoritesSlot) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSlotEmpty
		}

		return nil, fmt.Errorf("failed to read favorites slot: %w", err)
	}

	return payload, nil
}

func (r *RedisFavoritesSlot) Set(ctx context.Context, key string, payload []byte) error {
	err := r.client.Set(ctx, key, payload, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to write favorites slot: %w", err)
	}

	return nil
}
