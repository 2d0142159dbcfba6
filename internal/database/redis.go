package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client used for cart persistence.
func InitRedis(addr, password string, db int) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Error connecting to redis at %s: %q", addr, err)
	}
}

// GetRedis returns the shared Redis client.
func GetRedis() *redis.Client {
	return RedisClient
}
