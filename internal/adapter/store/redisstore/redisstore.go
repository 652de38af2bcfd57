package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raasdandiya/checkout/internal/core/domain"
)

const keyPrefix = "wizard:"

// Store keeps wizard sessions in Redis so the facade can run more than one
// instance. Sessions expire through the key TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, id string) (domain.WizardSession, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.WizardSession{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.WizardSession{}, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var sess domain.WizardSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return domain.WizardSession{}, fmt.Errorf("failed to decode session %s: %w", id, err)
	}

	return sess, nil
}

func (s *Store) Save(ctx context.Context, session domain.WizardSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+session.ID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session %s: %w", session.ID, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}

	return nil
}

// DeleteExpired is a no-op: Redis expires sessions through the key TTL set
// on every Save.
func (s *Store) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}
