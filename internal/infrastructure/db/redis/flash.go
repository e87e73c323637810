package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell/blog-system/internal/core/ports"
)

// Pending flashes expire on their own if the follow-up page is never loaded.
const flashTTL = 10 * time.Minute

// FlashStore keeps one-time notices in Redis, one list per browser session.
// Key format: flash:<session_id>
type FlashStore struct {
	client *redis.Client
}

// NewFlashStore creates a FlashStore wrapping the given Redis client.
func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

// Add appends a message to the session's pending list and refreshes its TTL.
func (s *FlashStore) Add(ctx context.Context, sessionID string, f ports.Flash) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("flash encode: %w", err)
	}

	key := s.key(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash add: %w", err)
	}
	return nil
}

// Consume returns all pending messages for the session and deletes them,
// so each message is shown exactly once.
func (s *FlashStore) Consume(ctx context.Context, sessionID string) ([]ports.Flash, error) {
	key := s.key(sessionID)

	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("flash consume: %w", err)
	}

	raw := items.Val()
	flashes := make([]ports.Flash, 0, len(raw))
	for _, item := range raw {
		var f ports.Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

func (s *FlashStore) key(sessionID string) string {
	return "flash:" + sessionID
}
