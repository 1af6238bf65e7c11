package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/util"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : счётчик непрочитанных уведомлений в Redis
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// GetUnreadCount : false вторым значением, если ключа нет
func (r *CacheRepository) GetUnreadCount(ctx context.Context, userID int64) (int, bool, error) {
	val, err := r.client.Client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // нет в кэше
	} else if err != nil {
		return 0, false, util.LogError("ошибка получения счётчика из Redis", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, util.LogError("некорректное значение счётчика в кэше", err)
	}
	return count, true, nil
}

func (r *CacheRepository) SetUnreadCount(ctx context.Context, userID int64, count int) error {
	cmd := r.client.Client.Set(ctx, r.key(userID), count, r.ttl)
	if err := cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}
	return nil
}

func (r *CacheRepository) InvalidateUnreadCount(ctx context.Context, userID int64) error {
	if err := r.client.Client.Del(ctx, r.key(userID)).Err(); err != nil {
		return util.LogError("ошибка удаления счётчика из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(userID int64) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}
