package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard stats cache keys
const (
	landlordStatsKeyFmt = "stats:landlord:%d:%s"
	statsTTL            = 60 * time.Second
)

var client *redis.Client

// Init initializes the Redis connection. A failed connection leaves the
// client nil and all cache operations degrade to no-ops.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client (nil when the cache is unavailable)
func GetClient() *redis.Client {
	return client
}

func landlordStatsKey(landlordID int, month string) string {
	return fmt.Sprintf(landlordStatsKeyFmt, landlordID, month)
}

// GetLandlordStats returns cached dashboard stats JSON, unmarshalled into dst
func GetLandlordStats(ctx context.Context, landlordID int, month string, dst interface{}) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, landlordStatsKey(landlordID, month)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetLandlordStats caches dashboard stats with a short TTL
func SetLandlordStats(ctx context.Context, landlordID int, month string, stats interface{}) {
	if client == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	client.Set(ctx, landlordStatsKey(landlordID, month), data, statsTTL)
}

// InvalidateLandlordStats drops cached stats after a payment write
func InvalidateLandlordStats(ctx context.Context, landlordID int, month string) {
	if client == nil {
		return
	}
	client.Del(ctx, landlordStatsKey(landlordID, month))
}
