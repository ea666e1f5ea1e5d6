package draftrequests

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mwhitley/stockroom-console/internal/entities"
	apperr "github.com/mwhitley/stockroom-console/internal/errors"
)

// redisRepo implements Repository backed by Redis. Keys are scoped to a
// session ID and expire with the session TTL, so a draft never outlives
// the session that created it.
type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisRepoConfig holds configuration for the Redis draft repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// TTL bounds how long an abandoned session's draft lingers. Zero
	// means no expiry.
	TTL time.Duration
}

// NewRedisRepository creates a Redis-backed draft request repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}
	if cfg.Client == nil {
		return nil, apperr.InvalidArgument("cfg.Client is required")
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func itemsKey(sessionID string) string {
	return fmt.Sprintf("draft:%s:items", sessionID)
}

func seqKey(sessionID string) string {
	return fmt.Sprintf("draft:%s:seq", sessionID)
}

// Add assigns the next draft ID via INCR and appends the item
func (r *redisRepo) Add(ctx context.Context, sessionID string, item *entities.StockRequestItem) (*entities.StockRequestItem, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}
	if item == nil {
		return nil, apperr.InvalidArgument("item cannot be nil")
	}

	id, err := r.client.Incr(ctx, seqKey(sessionID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to assign draft ID")
	}

	stored := *item
	stored.DraftID = int(id)

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to marshal draft item")
	}

	pipe := r.client.Pipeline()
	pipe.RPush(ctx, itemsKey(sessionID), string(data))
	if r.ttl > 0 {
		pipe.Expire(ctx, itemsKey(sessionID), r.ttl)
		pipe.Expire(ctx, seqKey(sessionID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, apperr.Wrap(err, "failed to store draft item")
	}

	return &stored, nil
}

// Remove deletes the line-item with the given draft ID if present
func (r *redisRepo) Remove(ctx context.Context, sessionID string, draftID int) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	values, err := r.client.LRange(ctx, itemsKey(sessionID), 0, -1).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to read draft items")
	}

	for _, value := range values {
		var item entities.StockRequestItem
		if err := json.Unmarshal([]byte(value), &item); err != nil {
			return apperr.Wrap(err, "failed to unmarshal draft item")
		}
		if item.DraftID == draftID {
			if err := r.client.LRem(ctx, itemsKey(sessionID), 1, value).Err(); err != nil {
				return apperr.Wrap(err, "failed to remove draft item")
			}
			return nil
		}
	}

	// Absent ID is a no-op
	return nil
}

// Clear empties the session's line-items, keeping the ID counter
func (r *redisRepo) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	if err := r.client.Del(ctx, itemsKey(sessionID)).Err(); err != nil {
		return apperr.Wrap(err, "failed to clear draft items")
	}

	return nil
}

// Reset empties the session's line-items and resets the counter to 1
func (r *redisRepo) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	if err := r.client.Del(ctx, itemsKey(sessionID), seqKey(sessionID)).Err(); err != nil {
		return apperr.Wrap(err, "failed to reset draft session")
	}

	return nil
}

// List returns the session's line-items in insertion order
func (r *redisRepo) List(ctx context.Context, sessionID string) ([]*entities.StockRequestItem, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	values, err := r.client.LRange(ctx, itemsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to read draft items")
	}

	items := make([]*entities.StockRequestItem, 0, len(values))
	for _, value := range values {
		var item entities.StockRequestItem
		if err := json.Unmarshal([]byte(value), &item); err != nil {
			return nil, apperr.Wrap(err, "failed to unmarshal draft item")
		}
		items = append(items, &item)
	}

	return items, nil
}
