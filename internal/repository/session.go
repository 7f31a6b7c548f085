package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps sessions in Redis as JSON under session:<id>, with
// the key TTL acting as the inactivity timeout.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *SessionRepository) Create(ctx context.Context, s *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.rdb.Set(ctx, sessionKey(s.ID), payload, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	payload, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var s model.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	s.ID = id
	return &s, nil
}

// Touch pushes the expiry of an existing session ttl into the future.
func (r *SessionRepository) Touch(ctx context.Context, id string, ttl time.Duration) error {
	ok, err := r.rdb.Expire(ctx, sessionKey(id), ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}
