package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key is absent or already consumed.
var ErrNotFound = errors.New("redis: key not found")

// MagicLinkEntry is what is kept under a pending sign-in token id.
type MagicLinkEntry struct {
	Email      string `json:"email"`
	SecretHash string `json:"secret_hash"`
}

// RedisRepository defines methods for interacting with Redis key-values
type RedisRepository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetMagicLink(ctx context.Context, tokenID string, entry *MagicLinkEntry, ttl time.Duration) error
	// ConsumeMagicLink reads and deletes the entry in one round trip so a
	// link can only be redeemed once.
	ConsumeMagicLink(ctx context.Context, tokenID string) (*MagicLinkEntry, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) RedisRepository {
	return &redis{client: client}
}

func sessionKey(id string) string   { return "session:" + id }
func magicLinkKey(id string) string { return "magic_link:" + id }

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (r *redis) SetMagicLink(ctx context.Context, tokenID string, entry *MagicLinkEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, magicLinkKey(tokenID), data, ttl).Err()
}

func (r *redis) ConsumeMagicLink(ctx context.Context, tokenID string) (*MagicLinkEntry, error) {
	data, err := r.client.GetDel(ctx, magicLinkKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var entry MagicLinkEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
