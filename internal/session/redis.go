// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portal:session:"

// redisStore keeps JSON-encoded sessions in redis. Expiry is delegated to
// redis key TTLs, so the store needs no sweeper.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to the redis server described by cfg and verifies
// the connection with a PING bounded by a short timeout.
func NewRedisStore(ctx context.Context, cfg config.Redis) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return newRedisStore(client), nil
}

func newRedisStore(client *redis.Client) *redisStore {
	return &redisStore{client: client, prefix: redisKeyPrefix}
}

func (r *redisStore) Load(ctx context.Context, key string) (models.SessionState, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.SessionState{}, ErrSessionNotFound
	}
	if err != nil {
		return models.SessionState{}, fmt.Errorf("redis get session: %w", err)
	}

	var state models.SessionState
	if err = json.Unmarshal(raw, &state); err != nil {
		return models.SessionState{}, fmt.Errorf("decode session: %w", err)
	}

	return state, nil
}

func (r *redisStore) Save(ctx context.Context, key string, state models.SessionState, ttl time.Duration) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = r.client.Set(ctx, r.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

func (r *redisStore) Clear(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}

	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
