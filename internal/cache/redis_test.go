package cache

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisQueue_BadURL(t *testing.T) {
	_, err := NewRedisQueue(Config{URL: "not-a-url"})
	require.Error(t, err)
}

func TestKeyNames(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	q := newRedisQueue(client, "news", 0)
	assert.Equal(t, "news:keywords:seen", q.seenKey)
	assert.Equal(t, "news:keywords:pending", q.listKey)

	q = newRedisQueue(client, "", 0)
	assert.Equal(t, "news_pipeline:keywords:seen", q.seenKey)
}
