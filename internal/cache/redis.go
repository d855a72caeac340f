// Package cache keeps the keyword seen-set and pending-queue in Redis so both
// survive generator restarts.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"news_pipeline/internal/keywords"
)

// offerScript adds a keyword to the seen zset and the pending list in one step
// and trims consumed keys once the seen-set is larger than ARGV[4].
//
// KEYS: seen zset, pending list, pending hash (key -> keyword)
// ARGV: key, keyword, score, maxSeen
var offerScript = redis.NewScript(`
if redis.call('ZADD', KEYS[1], 'NX', ARGV[3], ARGV[1]) == 0 then
  return 0
end
redis.call('RPUSH', KEYS[2], ARGV[1])
redis.call('HSET', KEYS[3], ARGV[1], ARGV[2])

local max = tonumber(ARGV[4])
if max > 0 then
  local excess = redis.call('ZCARD', KEYS[1]) - max
  if excess > 0 then
    for _, k in ipairs(redis.call('ZRANGE', KEYS[1], 0, -1)) do
      if excess <= 0 then break end
      if redis.call('HEXISTS', KEYS[3], k) == 0 then
        redis.call('ZREM', KEYS[1], k)
        excess = excess - 1
      end
    end
  end
end
return 1
`)

// pollScript pops the oldest pending key and returns its keyword.
var pollScript = redis.NewScript(`
local k = redis.call('LPOP', KEYS[1])
if not k then
  return false
end
local kw = redis.call('HGET', KEYS[2], k)
redis.call('HDEL', KEYS[2], k)
return kw or k
`)

type Config struct {
	URL     string
	Prefix  string
	MaxSeen int
}

type RedisQueue struct {
	client  *redis.Client
	maxSeen int
	seenKey string
	listKey string
	hashKey string
	now     func() time.Time
}

func NewRedisQueue(cfg Config) (*RedisQueue, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return newRedisQueue(client, cfg.Prefix, cfg.MaxSeen), nil
}

func newRedisQueue(client *redis.Client, prefix string, maxSeen int) *RedisQueue {
	if prefix == "" {
		prefix = "news_pipeline:"
	}
	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &RedisQueue{
		client:  client,
		maxSeen: maxSeen,
		seenKey: prefix + "keywords:seen",
		listKey: prefix + "keywords:pending",
		hashKey: prefix + "keywords:pending_kw",
		now:     time.Now,
	}
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}

func (q *RedisQueue) Offer(ctx context.Context, keyword string) (bool, error) {
	keyword = strings.TrimSpace(keyword)
	key := keywords.Key(keyword)
	if key == "" {
		return false, nil
	}

	added, err := offerScript.Run(ctx, q.client,
		[]string{q.seenKey, q.listKey, q.hashKey},
		key, keyword, q.now().UnixNano(), q.maxSeen,
	).Int()
	if err != nil {
		return false, fmt.Errorf("offer keyword: %w", err)
	}
	return added == 1, nil
}

func (q *RedisQueue) Poll(ctx context.Context) (string, bool, error) {
	kw, err := pollScript.Run(ctx, q.client, []string{q.listKey, q.hashKey}).Text()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("poll keyword: %w", err)
	}
	return kw, true, nil
}

func (q *RedisQueue) Len(ctx context.Context) (int, error) {
	n, err := q.client.LLen(ctx, q.listKey).Result()
	if err != nil {
		return 0, fmt.Errorf("pending length: %w", err)
	}
	return int(n), nil
}

// Seen reports how many keywords are remembered.
func (q *RedisQueue) Seen(ctx context.Context) (int, error) {
	n, err := q.client.ZCard(ctx, q.seenKey).Result()
	if err != nil {
		return 0, fmt.Errorf("seen size: %w", err)
	}
	return int(n), nil
}
