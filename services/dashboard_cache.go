package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// DashboardCache holds the last computed dashboard per user. The dashboard is
// always rebuilt by a full re-scan; this cache only short-circuits repeat
// reads between writes. Note upserts, PDF uploads and hierarchy deletes
// invalidate the key, which is the refresh signal those writes emit.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalDashboardCache *DashboardCache

// NewDashboardCache creates a Redis-backed dashboard cache
func NewDashboardCache(redisURL string, ttl time.Duration) (*DashboardCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &DashboardCache{client: client, ttl: ttl}, nil
}

func dashboardKey(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// Get retrieves the cached dashboard for a user; nil means a cache miss
func (dc *DashboardCache) Get(ctx context.Context, userID string) (*model.DashboardStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	data, err := dc.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard from cache: %v", err)
	}

	var stats model.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard: %v", err)
	}
	return &stats, nil
}

// Set stores a freshly computed dashboard for a user
func (dc *DashboardCache) Set(ctx context.Context, userID string, stats *model.DashboardStats) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard: %v", err)
	}

	if err := dc.client.Set(ctx, dashboardKey(userID), data, dc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache dashboard: %v", err)
	}
	return nil
}

// Invalidate drops the cached dashboard so the next read recomputes it
func (dc *DashboardCache) Invalidate(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}
	return dc.client.Del(ctx, dashboardKey(userID)).Err()
}
