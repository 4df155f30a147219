package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"nutricheck/internal/models"
)

// IntakeCache caches per-user daily intake snapshots so food evaluations do
// not hit the database on every scan. Entries are invalidated whenever the
// food log changes.
type IntakeCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewIntakeCache() (*IntakeCache, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &IntakeCache{
		client: client,
		ctx:    ctx,
		ttl:    15 * time.Minute,
	}, nil
}

func (c *IntakeCache) Close() error {
	return c.client.Close()
}

func intakeKey(userID uint, date time.Time) string {
	return fmt.Sprintf("intake:%d:%s", userID, date.Format("2006-01-02"))
}

// StoreSummary caches one day's totals.
func (c *IntakeCache) StoreSummary(userID uint, date time.Time, summary *models.DailySummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := c.client.Set(c.ctx, intakeKey(userID, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store summary in Redis: %w", err)
	}
	return nil
}

// GetSummary returns the cached totals and whether they were present.
func (c *IntakeCache) GetSummary(userID uint, date time.Time) (*models.DailySummary, bool, error) {
	data, err := c.client.Get(c.ctx, intakeKey(userID, date)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get summary from Redis: %w", err)
	}

	var summary models.DailySummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, true, nil
}

// Invalidate drops the cached totals for one user and day.
func (c *IntakeCache) Invalidate(userID uint, date time.Time) error {
	return c.client.Del(c.ctx, intakeKey(userID, date)).Err()
}

// GetStatus reports connection pool statistics for the health endpoint.
func (c *IntakeCache) GetStatus() (map[string]interface{}, error) {
	if err := c.client.Ping(c.ctx).Err(); err != nil {
		return nil, err
	}

	stats := c.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
