package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adoptme/pet-adoption-api/internal/infrastructure/config"
)

const (
	reservationTTL = 30 * time.Second
	connectTimeout = 5 * time.Second
)

// Connect dials the Redis backend of the adoption fence and verifies it with
// a ping. The fence is the only Redis consumer in this API: when the server
// is unreachable the caller runs without fencing instead of failing startup.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// PetReservation fences concurrent adoptions of one pet with a short-lived
// SETNX key. The TTL bounds how long a crashed workflow can hold the fence.
// Key format: adopt:pet:<pet_id>
type PetReservation struct {
	client *redis.Client
}

// NewPetReservation wraps the given Redis client.
func NewPetReservation(client *redis.Client) *PetReservation {
	return &PetReservation{client: client}
}

// Reserve claims the pet for one in-flight adoption. Returns false when
// another workflow already holds the claim.
func (r *PetReservation) Reserve(ctx context.Context, petID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(petID), "1", reservationTTL).Result()
	if err != nil {
		return false, fmt.Errorf("pet reservation: %w", err)
	}
	return ok, nil
}

// Release drops the claim. Safe to call when no claim is held.
func (r *PetReservation) Release(ctx context.Context, petID string) error {
	return r.client.Del(ctx, r.key(petID)).Err()
}

func (r *PetReservation) key(petID string) string {
	return "adopt:pet:" + petID
}
