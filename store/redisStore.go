package store

import (
	"context"
	"errors"

	"github.com/pattaranan1/Twitter-Cloning/models"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	r *redis.Client
}

func NewRedisStore(ctx context.Context, config models.RedisConfig) (Store, error) {
	r := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
	})
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &redisStore{r: r}, nil
}

func (rs *redisStore) Incr(ctx context.Context, key string) (int64, error) {
	return rs.r.Incr(ctx, key).Result()
}

func (rs *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := rs.r.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (rs *redisStore) Set(ctx context.Context, key string, value string) error {
	return rs.r.Set(ctx, key, value, 0).Err()
}

func (rs *redisStore) SetNX(ctx context.Context, key string, value string) (bool, error) {
	return rs.r.SetNX(ctx, key, value, 0).Result()
}

func (rs *redisStore) SAdd(ctx context.Context, key string, members ...string) error {
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	return rs.r.SAdd(ctx, key, args...).Err()
}

func (rs *redisStore) SRem(ctx context.Context, key string, members ...string) error {
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	return rs.r.SRem(ctx, key, args...).Err()
}

func (rs *redisStore) SIsMember(ctx context.Context, key string, member string) (bool, error) {
	return rs.r.SIsMember(ctx, key, member).Result()
}

func (rs *redisStore) SMembers(ctx context.Context, key string) ([]string, error) {
	return rs.r.SMembers(ctx, key).Result()
}

func (rs *redisStore) SCard(ctx context.Context, key string) (int64, error) {
	return rs.r.SCard(ctx, key).Result()
}

func (rs *redisStore) LPush(ctx context.Context, key string, values ...string) error {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return rs.r.LPush(ctx, key, args...).Err()
}

func (rs *redisStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return rs.r.LRange(ctx, key, start, stop).Result()
}

func (rs *redisStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	return rs.r.LTrim(ctx, key, start, stop).Err()
}

func (rs *redisStore) SortGet(ctx context.Context, key string, getPattern string, count int64) ([]string, error) {
	return rs.r.Sort(ctx, key, &redis.Sort{
		Get:   []string{getPattern},
		Count: count,
		Order: "DESC",
	}).Result()
}

func (rs *redisStore) Close() error {
	return rs.r.Close()
}
