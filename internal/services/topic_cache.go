package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/arturxdev/interview-helper/internal/models"

	"github.com/go-redis/redis/v8"
)

const topicsCacheKey = "interview-helper.topics.list"

type RedisTopicCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTopicCache(client *redis.Client, ttl time.Duration) *RedisTopicCache {
	return &RedisTopicCache{client: client, ttl: ttl}
}

func (c *RedisTopicCache) Get(ctx context.Context) ([]models.Topic, bool) {
	raw, err := c.client.Get(ctx, topicsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("topic cache: get failed: %v", err)
		}
		return nil, false
	}
	var topics []models.Topic
	if err := json.Unmarshal(raw, &topics); err != nil {
		log.Printf("topic cache: corrupt entry dropped: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return topics, true
}

func (c *RedisTopicCache) Set(ctx context.Context, topics []models.Topic) {
	raw, err := json.Marshal(topics)
	if err != nil {
		log.Printf("topic cache: marshal error: %v", err)
		return
	}
	if err := c.client.Set(ctx, topicsCacheKey, raw, c.ttl).Err(); err != nil {
		log.Printf("topic cache: set failed: %v", err)
	}
}

func (c *RedisTopicCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, topicsCacheKey).Err(); err != nil {
		log.Printf("topic cache: invalidate failed: %v", err)
	}
}
