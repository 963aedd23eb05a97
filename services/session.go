package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/summer0102/real-estate-showcase/models"
)

const sessionKeyPrefix = "admin_session:"

// SessionKV is the key-value persistence collaborator for admin sessions.
// Redis implements it in production; tests use an in-memory map.
type SessionKV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisKV struct {
	client *redis.Client
}

func NewRedisSessionKV(client *redis.Client) SessionKV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SessionStore persists admin sessions under opaque ids. Validity is a
// property of the stored session itself (IsValid), the TTL only bounds
// how long a stale record lingers.
type SessionStore struct {
	kv     SessionKV
	maxAge time.Duration
}

func NewSessionStore(kv SessionKV, maxAge time.Duration) *SessionStore {
	return &SessionStore{kv: kv, maxAge: maxAge}
}

func (ss *SessionStore) MaxAge() time.Duration { return ss.maxAge }

func (ss *SessionStore) Save(ctx context.Context, sessionID string, session models.AdminSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return ss.kv.Set(ctx, sessionKeyPrefix+sessionID, string(data), ss.maxAge)
}

// Load returns the session and whether a valid one exists. Expired or
// unauthenticated records are cleared on read.
func (ss *SessionStore) Load(ctx context.Context, sessionID string) (models.AdminSession, bool, error) {
	var session models.AdminSession

	data, found, err := ss.kv.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || !found {
		return session, false, err
	}
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		// A corrupt record is as good as no record.
		_ = ss.kv.Del(ctx, sessionKeyPrefix+sessionID)
		return models.AdminSession{}, false, nil
	}

	if !session.IsValid(time.Now(), ss.maxAge) {
		_ = ss.kv.Del(ctx, sessionKeyPrefix+sessionID)
		return models.AdminSession{}, false, nil
	}
	return session, true, nil
}

func (ss *SessionStore) Clear(ctx context.Context, sessionID string) error {
	return ss.kv.Del(ctx, sessionKeyPrefix+sessionID)
}
