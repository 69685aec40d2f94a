package database

import (
	"context"
	"log"
	"time"

	"github.com/arturxdev/interview-helper/internal/config"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis returns nil when no address is configured or the server does
// not answer; callers then run without the topic cache.
func ConnectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("redis: REDIS_ADDR not set, topic cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: ping failed, topic cache disabled: %v", err)
		_ = rdb.Close()
		return nil
	}

	log.Println("redis connected")
	return rdb
}
