package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mydarts/server/game-service/internal/stats"

	"github.com/redis/go-redis/v9"
)

const (
	KeyActiveMatches = "matches:active" // set of match ids in progress
	KeyCareerPrefix  = "career:"        // cached CareerStats JSON per user
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis connects and pings the server.
func NewRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connect %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

// Cache holds the active-match index and cached career statistics.
// It is never the source of truth.
type Cache struct {
	rdb       redis.UniversalClient
	careerTTL time.Duration
}

func NewCache(rdb redis.UniversalClient, careerTTL time.Duration) *Cache {
	return &Cache{rdb: rdb, careerTTL: careerTTL}
}

func careerKey(uid int64) string {
	return KeyCareerPrefix + strconv.FormatInt(uid, 10)
}

func (c *Cache) AddActive(ctx context.Context, matchID string) error {
	return c.rdb.SAdd(ctx, KeyActiveMatches, matchID).Err()
}

func (c *Cache) ActiveMatches(ctx context.Context) ([]string, error) {
	return c.rdb.SMembers(ctx, KeyActiveMatches).Result()
}

// MarkFinished drops the match from the active index and invalidates the
// career stats of its players.
func (c *Cache) MarkFinished(ctx context.Context, matchID string, playerIDs []int64) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, KeyActiveMatches, matchID)
		for _, uid := range playerIDs {
			pipe.Del(ctx, careerKey(uid))
		}
		return nil
	})
	return err
}

// GetCareer returns nil without error on a cache miss.
func (c *Cache) GetCareer(ctx context.Context, uid int64) (*stats.CareerStats, error) {
	data, err := c.rdb.Get(ctx, careerKey(uid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cs stats.CareerStats
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("decode career %d: %w", uid, err)
	}
	return &cs, nil
}

func (c *Cache) SetCareer(ctx context.Context, cs *stats.CareerStats) error {
	data, err := json.Marshal(cs)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, careerKey(cs.UserID), data, c.careerTTL).Err()
}

func (c *Cache) DeleteCareer(ctx context.Context, uids ...int64) error {
	if len(uids) == 0 {
		return nil
	}
	keys := make([]string, len(uids))
	for i, uid := range uids {
		keys[i] = careerKey(uid)
	}
	return c.rdb.Del(ctx, keys...).Err()
}
