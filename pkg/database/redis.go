package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"lingo_edu_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis 建立 Redis 连接池并 ping 一次确认可用（词典缓存依赖它）
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Redis connection ready at %s:%d", cfg.Host, cfg.Port)
	return rdb, nil
}
