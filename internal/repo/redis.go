package repo

import (
	"FileHub/config"
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// OpenRedis opens the Redis client and verifies the connection.
func OpenRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.AppConfig.RedisHost, config.AppConfig.RedisPort),
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("init redis fail", err)
	}
	log.Println("init redis success")
	return client
}
